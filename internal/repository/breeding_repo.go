package repository

import (
	"context"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BreedingRecordRepository interface {
	Create(ctx context.Context, b *model.BreedingRecord) error
	List(ctx context.Context, userID string) ([]model.BreedingRecord, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.BreedingRecord, error)
	Update(ctx context.Context, b *model.BreedingRecord) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type breedingRepo struct{ db *gorm.DB }

func NewBreedingRecordRepository(db *gorm.DB) BreedingRecordRepository {
	return &breedingRepo{db: db}
}

func (r *breedingRepo) Create(ctx context.Context, b *model.BreedingRecord) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *breedingRepo) List(ctx context.Context, userID string) ([]model.BreedingRecord, error) {
	var recs []model.BreedingRecord
	err := ownedBy(r.db.WithContext(ctx), userID).Order("breeding_date DESC").Find(&recs).Error
	return recs, err
}

func (r *breedingRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.BreedingRecord, error) {
	var b model.BreedingRecord
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *breedingRepo) Update(ctx context.Context, b *model.BreedingRecord) error {
	return ownedBy(r.db.WithContext(ctx), b.UserID).Save(b).Error
}

func (r *breedingRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).Delete(&model.BreedingRecord{}).Error
}
