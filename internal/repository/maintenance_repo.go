package repository

import (
	"context"

	"ranchops/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceRecordRepository interface {
	Create(ctx context.Context, m *model.MaintenanceRecord) error
	ListByEquipment(ctx context.Context, userID string, equipmentID uuid.UUID) ([]model.MaintenanceRecord, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.MaintenanceRecord, error)
	Update(ctx context.Context, m *model.MaintenanceRecord) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type maintenanceRepo struct{ db *gorm.DB }

func NewMaintenanceRecordRepository(db *gorm.DB) MaintenanceRecordRepository {
	return &maintenanceRepo{db: db}
}

func (r *maintenanceRepo) Create(ctx context.Context, m *model.MaintenanceRecord) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByEquipment orders by service date, newest first.
func (r *maintenanceRepo) ListByEquipment(ctx context.Context, userID string, equipmentID uuid.UUID) ([]model.MaintenanceRecord, error) {
	var recs []model.MaintenanceRecord
	err := ownedBy(r.db.WithContext(ctx), userID).
		Where("equipment_id = ?", equipmentID.String()).
		Order("date DESC").Find(&recs).Error
	return recs, err
}

func (r *maintenanceRepo) FindByID(ctx context.Context, userID string, id uuid.UUID) (*model.MaintenanceRecord, error) {
	var m model.MaintenanceRecord
	err := ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maintenanceRepo) Update(ctx context.Context, m *model.MaintenanceRecord) error {
	return ownedBy(r.db.WithContext(ctx), m.UserID).Save(m).Error
}

func (r *maintenanceRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return ownedBy(r.db.WithContext(ctx), userID).Where("id = ?", id.String()).Delete(&model.MaintenanceRecord{}).Error
}
