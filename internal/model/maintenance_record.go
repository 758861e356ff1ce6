package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaintenanceRecord logs service work performed on a piece of Equipment.
type MaintenanceRecord struct {
	ID              string `gorm:"type:char(36);primaryKey"`
	UserID          string `gorm:"type:char(36);not null;index"`
	EquipmentID     string `gorm:"type:char(36);not null;index"`
	Description     string `gorm:"not null"`
	Date            time.Time
	Cost            *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PerformedBy     *string          `gorm:"type:varchar(100)"`
	NextServiceDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Equipment *Equipment `gorm:"foreignKey:EquipmentID"`
}

func (m *MaintenanceRecord) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
