package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryItem tracks consumables (feed, medicine, supplies).
// An item is low stock when quantity <= min_threshold; items without a
// threshold are never flagged.
type InventoryItem struct {
	ID           string           `gorm:"type:char(36);primaryKey"`
	UserID       string           `gorm:"type:char(36);not null;index"`
	Name         string           `gorm:"type:varchar(100);not null"`
	Category     string           `gorm:"type:varchar(100);not null"`
	Quantity     decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	Unit         string           `gorm:"type:varchar(20);not null"`
	MinThreshold *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CostPerUnit  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Supplier     *string          `gorm:"type:varchar(100)"`
	Location     *string          `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (i *InventoryItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
