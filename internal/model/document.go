package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document stores file metadata only — the file itself lives in external
// storage and is referenced by URL. Tags are a comma-separated list: the
// lowest-common-denominator column set has no array type.
// ExpiryDate drives the read-time "expiring soon" flag (<= now + 30 days).
type Document struct {
	ID         string  `gorm:"type:char(36);primaryKey"`
	UserID     string  `gorm:"type:char(36);not null;index"`
	Title      string  `gorm:"type:varchar(200);not null"`
	Category   string  `gorm:"type:varchar(100);not null"`
	FileURL    string  `gorm:"type:varchar(500);not null"`
	FileSize   *int64
	MimeType   *string `gorm:"type:varchar(100)"`
	Tags       *string `gorm:"type:varchar(500)"`
	ExpiryDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (d *Document) BeforeCreate(*gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
