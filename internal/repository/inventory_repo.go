package repository

import (
	"context"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(ctx context.Context, i *model.InventoryItem) error
	List(ctx context.Context, userID string) ([]model.InventoryItem, error)
	// ListLowStock applies the single low-stock predicate: a threshold is set
	// and quantity <= min_threshold. Items without a threshold never match.
	ListLowStock(ctx context.Context, userID string) ([]model.InventoryItem, error)
	CountLowStock(ctx context.Context, userID string) (int64, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.InventoryItem, error)
	Update(ctx context.Context, i *model.InventoryItem) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, i *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *inventoryRepo) List(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := ownedBy(r.db.WithContext(ctx), userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) ListLowStock(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := ownedBy(r.db.WithContext(ctx), userID).
		Where("min_threshold IS NOT NULL AND quantity <= min_threshold").
		Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *inventoryRepo) CountLowStock(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := ownedBy(r.db.WithContext(ctx).Model(&model.InventoryItem{}), userID).
		Where("min_threshold IS NOT NULL AND quantity <= min_threshold").
		Count(&n).Error
	return n, err
}

func (r *inventoryRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.InventoryItem, error) {
	var i model.InventoryItem
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *inventoryRepo) Update(ctx context.Context, i *model.InventoryItem) error {
	return ownedBy(r.db.WithContext(ctx), i.UserID).Save(i).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).Delete(&model.InventoryItem{}).Error
}
