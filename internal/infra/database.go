package infra

import (
	"fmt"
	"sync"

	"ranchops/internal/config"
	"ranchops/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbOnce   sync.Once
	sharedDB *gorm.DB
	dbErr    error
)

// NewDatabase selects the GORM driver from cfg.DBType (postgresql | mysql |
// sqlite), opens the connection, runs AutoMigrate over the shared model set,
// and memoizes the handle: every call after the first returns the same
// *gorm.DB (or the same initialization error). Initialization failures are
// fatal at startup — the caller exits non-zero and an external supervisor
// restarts the process; there is no retry here.
//
// The same entity definitions migrate on all three backends, so models stick
// to a portable column-type set: varchar/text, decimal, date, timestamp,
// integer, boolean. Nothing dialect-specific.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dbOnce.Do(func() {
		sharedDB, dbErr = openDatabase(cfg)
	})
	return sharedDB, dbErr
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := selectDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Unique violations surface as gorm.ErrDuplicatedKey on every
		// dialect instead of driver-specific error types.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Animal{},
		&model.HealthRecord{},
		&model.BreedingRecord{},
		&model.Transaction{},
		&model.Budget{},
		&model.Account{},
		&model.InventoryItem{},
		&model.Equipment{},
		&model.MaintenanceRecord{},
		&model.Document{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}

// selectDialector maps the configuration discriminant to a concrete driver.
// postgresql requires an explicit connection URL; mysql and sqlite fall back
// to local-development defaults so a zero-config start works.
func selectDialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "postgresql":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DB_TYPE=postgresql requires DATABASE_URL to be set")
		}
		return postgres.Open(cfg.DatabaseURL), nil

	case "mysql":
		host := cfg.DBHost
		if host == "" {
			host = "localhost"
		}
		port := cfg.DBPort
		if port == 0 {
			port = 3306
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser, cfg.DBPassword, host, port, cfg.DBName)
		return mysql.Open(dsn), nil

	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "ranchops.db"
		}
		return sqlite.Open(path), nil

	default:
		return nil, fmt.Errorf("unsupported database type %q (expected postgresql, mysql, or sqlite)", cfg.DBType)
	}
}
