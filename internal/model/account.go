package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is an accounting-style record used for trial balance reporting.
// Type: "asset" | "liability" | "equity" | "revenue" | "expense".
// Account numbers are unique per owner, not globally.
type Account struct {
	ID          string `gorm:"type:char(36);primaryKey"`
	UserID      string `gorm:"type:char(36);not null;uniqueIndex:uniq_account_number"`
	Number      string `gorm:"type:varchar(20);not null;uniqueIndex:uniq_account_number"`
	Name        string `gorm:"type:varchar(100);not null"`
	Type        string `gorm:"type:varchar(20);not null"`
	Subtype     *string `gorm:"type:varchar(50)"`
	Balance     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a *Account) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
