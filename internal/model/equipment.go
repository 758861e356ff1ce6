package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Equipment owns zero or more MaintenanceRecords.
// Status: "operational" | "maintenance" | "repair" | "retired".
type Equipment struct {
	ID            string `gorm:"type:char(36);primaryKey"`
	UserID        string `gorm:"type:char(36);not null;index"`
	Name          string `gorm:"type:varchar(100);not null"`
	Type          string `gorm:"type:varchar(50);not null"`
	Status        string `gorm:"type:varchar(20);not null;default:'operational'"`
	PurchaseDate  *time.Time
	PurchasePrice *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CurrentValue  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Location      *string          `gorm:"type:varchar(100)"`
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's pluralization ("equipment" has no plural form).
func (Equipment) TableName() string { return "equipment" }

func (e *Equipment) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
