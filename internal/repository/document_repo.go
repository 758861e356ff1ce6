package repository

import (
	"context"
	"time"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) error
	List(ctx context.Context, userID string) ([]model.Document, error)
	// ListExpiring returns documents whose expiry date falls on or before the
	// cutoff. Documents without an expiry date never expire.
	ListExpiring(ctx context.Context, userID string, cutoff time.Time) ([]model.Document, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Document, error)
	Update(ctx context.Context, d *model.Document) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) DocumentRepository { return &documentRepo{db: db} }

func (r *documentRepo) Create(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *documentRepo) List(ctx context.Context, userID string) ([]model.Document, error) {
	var docs []model.Document
	err := ownedBy(r.db.WithContext(ctx), userID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepo) ListExpiring(ctx context.Context, userID string, cutoff time.Time) ([]model.Document, error) {
	var docs []model.Document
	err := ownedBy(r.db.WithContext(ctx), userID).
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", cutoff).
		Order("expiry_date ASC").Find(&docs).Error
	return docs, err
}

func (r *documentRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Document, error) {
	var d model.Document
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *documentRepo) Update(ctx context.Context, d *model.Document) error {
	return ownedBy(r.db.WithContext(ctx), d.UserID).Save(d).Error
}

func (r *documentRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).Delete(&model.Document{}).Error
}
