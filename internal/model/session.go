package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session persists issued refresh tokens so they can be revoked on logout.
// Expired rows are pruned opportunistically on refresh.
type Session struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	UserID       string `gorm:"type:char(36);not null;index"`
	RefreshToken string `gorm:"type:varchar(500);uniqueIndex;not null"`
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

func (s *Session) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
