package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User stores system users with role-based access.
// Role: "user" | "manager" | "admin"
type User struct {
	ID           string  `gorm:"type:char(36);primaryKey"`
	Username     string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name         string  `gorm:"type:varchar(100);not null"`
	Email        *string `gorm:"type:varchar(200)"`
	PasswordHash string  `gorm:"type:varchar(100);not null"`
	Role         string  `gorm:"type:varchar(20);not null"`
	Active       bool    `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
