// cmd/seedadmin/main.go — creates or refreshes the local admin account.
// Usage: go run ./cmd/seedadmin
package main

import (
	"fmt"
	"log"

	"ranchops/internal/config"
	"ranchops/internal/infra"
	"ranchops/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	username := "admin"
	password := "changeme"
	email := "admin@ranchops.local"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	user := model.User{
		Username:     username,
		Name:         "Ranch Admin",
		Email:        &email,
		PasswordHash: string(hash),
		Role:         "admin",
		Active:       true,
	}

	// Upsert keyed on username so re-running resets the password.
	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"password_hash", "name", "email", "role", "active",
		}),
	}).Create(&user)
	if result.Error != nil {
		log.Fatalf("seed error: %v", result.Error)
	}

	fmt.Printf("admin user %q ready (password %q)\n", username, password)
}
