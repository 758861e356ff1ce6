package repository

import (
	"context"
	"time"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Create(ctx context.Context, h *model.HealthRecord) error
	List(ctx context.Context, userID string) ([]model.HealthRecord, error)
	ListByAnimal(ctx context.Context, userID string, animalID uuid.UUID) ([]model.HealthRecord, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.HealthRecord, error)
	Update(ctx context.Context, h *model.HealthRecord) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	// CountDue counts records whose next_due_date has passed as of the given
	// day — the read-time health alert counter.
	CountDue(ctx context.Context, userID string, asOf time.Time) (int64, error)
}

type healthRepo struct{ db *gorm.DB }

func NewHealthRecordRepository(db *gorm.DB) HealthRecordRepository { return &healthRepo{db: db} }

func (r *healthRepo) Create(ctx context.Context, h *model.HealthRecord) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// List orders by the record's own domain date, not creation time.
func (r *healthRepo) List(ctx context.Context, userID string) ([]model.HealthRecord, error) {
	var recs []model.HealthRecord
	err := ownedBy(r.db.WithContext(ctx), userID).Order("date DESC").Find(&recs).Error
	return recs, err
}

func (r *healthRepo) ListByAnimal(ctx context.Context, userID string, animalID uuid.UUID) ([]model.HealthRecord, error) {
	var recs []model.HealthRecord
	err := ownedBy(r.db.WithContext(ctx), userID).
		Where("animal_id = ?", animalID.String()).
		Order("date DESC").Find(&recs).Error
	return recs, err
}

func (r *healthRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.HealthRecord, error) {
	var h model.HealthRecord
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *healthRepo) Update(ctx context.Context, h *model.HealthRecord) error {
	return ownedBy(r.db.WithContext(ctx), h.UserID).Save(h).Error
}

func (r *healthRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).Delete(&model.HealthRecord{}).Error
}

func (r *healthRepo) CountDue(ctx context.Context, userID string, asOf time.Time) (int64, error) {
	var n int64
	err := ownedBy(r.db.WithContext(ctx).Model(&model.HealthRecord{}), userID).
		Where("next_due_date IS NOT NULL AND next_due_date <= ?", asOf).
		Count(&n).Error
	return n, err
}
