package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HealthRecord belongs to exactly one Animal.
// RecordType: "vaccination" | "treatment" | "checkup" | "deworming" | "test".
// NextDueDate drives the read-time health alert (due when <= today).
type HealthRecord struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	UserID       string `gorm:"type:char(36);not null;index"`
	AnimalID     string `gorm:"type:char(36);not null;index"`
	RecordType   string `gorm:"type:varchar(20);not null"`
	Description  string `gorm:"not null"`
	Date         time.Time
	Cost         *decimal.Decimal `gorm:"type:decimal(12,2)"`
	NextDueDate  *time.Time
	Veterinarian *string `gorm:"type:varchar(100)"`
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Animal *Animal `gorm:"foreignKey:AnimalID"`
}

func (h *HealthRecord) BeforeCreate(*gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
