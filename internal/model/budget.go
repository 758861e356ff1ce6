package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is compared against actual spend at read time; there is no stored
// "over budget" flag. Period: "weekly" | "monthly" | "quarterly" | "yearly".
// AlertThreshold is the percentage of TargetAmount at which the budget is
// flagged (e.g. 80 means alert at 80% spent).
type Budget struct {
	ID             string          `gorm:"type:char(36);primaryKey"`
	UserID         string          `gorm:"type:char(36);not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Category       string          `gorm:"type:varchar(100);not null"`
	TargetAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Period         string          `gorm:"type:varchar(10);not null"`
	AlertThreshold decimal.Decimal `gorm:"type:decimal(5,2);not null;default:80"`
	Active         bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (b *Budget) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
