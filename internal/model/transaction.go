package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is the atomic unit of all financial aggregation.
// Type: "income" | "expense". Category is free text. Amount is a fixed
// precision decimal — summation never happens in float.
type Transaction struct {
	ID          string          `gorm:"type:char(36);primaryKey"`
	UserID      string          `gorm:"type:char(36);not null;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Category    string          `gorm:"type:varchar(100);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Date        time.Time       `gorm:"not null;index"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Transaction) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
