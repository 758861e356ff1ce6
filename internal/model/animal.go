package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Animal is the core livestock registry entry. Health records and breeding
// records hang off it. Status: "active" | "sold" | "deceased" | "quarantine".
type Animal struct {
	ID        string  `gorm:"type:char(36);primaryKey"`
	UserID    string  `gorm:"type:char(36);not null;index"`
	TagID     string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name      *string `gorm:"type:varchar(100)"`
	Species   string  `gorm:"type:varchar(50);not null"`
	Breed     *string `gorm:"type:varchar(100)"`
	Gender    string  `gorm:"type:varchar(10);not null"`
	BirthDate *time.Time
	Weight    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Location  *string          `gorm:"type:varchar(100)"`
	Status    string           `gorm:"type:varchar(20);not null;default:'active'"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate assigns the UUID in application code — per-dialect ID defaults
// (gen_random_uuid etc.) are not portable across the three supported backends.
func (a *Animal) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
