package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BreedingRecord links a mother (required) and father (optional) Animal.
// Pregnancy status is never stored — it is derived at read time from the
// expected/actual birth dates.
type BreedingRecord struct {
	ID                string  `gorm:"type:char(36);primaryKey"`
	UserID            string  `gorm:"type:char(36);not null;index"`
	MotherID          string  `gorm:"type:char(36);not null;index"`
	FatherID          *string `gorm:"type:char(36)"`
	BreedingDate      time.Time
	ExpectedBirthDate *time.Time
	ActualBirthDate   *time.Time
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Mother *Animal `gorm:"foreignKey:MotherID"`
	Father *Animal `gorm:"foreignKey:FatherID"`
}

func (b *BreedingRecord) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
