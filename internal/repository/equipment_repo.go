package repository

import (
	"context"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EquipmentRepository interface {
	Create(ctx context.Context, e *model.Equipment) error
	List(ctx context.Context, userID string) ([]model.Equipment, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Equipment, error)
	Update(ctx context.Context, e *model.Equipment) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	// CountNeedingService counts equipment in "maintenance" or "repair".
	CountNeedingService(ctx context.Context, userID string) (int64, error)
}

type equipmentRepo struct{ db *gorm.DB }

func NewEquipmentRepository(db *gorm.DB) EquipmentRepository { return &equipmentRepo{db: db} }

func (r *equipmentRepo) Create(ctx context.Context, e *model.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *equipmentRepo) List(ctx context.Context, userID string) ([]model.Equipment, error) {
	var eq []model.Equipment
	err := ownedBy(r.db.WithContext(ctx), userID).Order("created_at DESC").Find(&eq).Error
	return eq, err
}

func (r *equipmentRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.Equipment, error) {
	var e model.Equipment
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepo) Update(ctx context.Context, e *model.Equipment) error {
	return ownedBy(r.db.WithContext(ctx), e.UserID).Save(e).Error
}

// Delete removes the equipment together with its maintenance history in one
// transaction, so a failed delete never leaves orphaned records.
func (r *equipmentRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownedBy(tx, userID).Where("equipment_id = ?", id.String()).Delete(&model.MaintenanceRecord{}).Error; err != nil {
			return err
		}
		return ownedBy(tx, userID).Where("id = ?", id.String()).Delete(&model.Equipment{}).Error
	})
}

func (r *equipmentRepo) CountNeedingService(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := ownedBy(r.db.WithContext(ctx).Model(&model.Equipment{}), userID).
		Where("status IN ?", []string{"maintenance", "repair"}).
		Count(&n).Error
	return n, err
}
