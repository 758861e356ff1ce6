package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Everything is read once at process start; nothing re-reads the environment
// afterwards.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database. DBType selects the backend: postgresql | mysql | sqlite.
	// DATABASE_URL is mandatory for postgresql; the mysql fields and
	// SQLITE_PATH fall back to local-development defaults.
	DBType      string `mapstructure:"DB_TYPE"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      int    `mapstructure:"DB_PORT"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBName      string `mapstructure:"DB_NAME"`
	SQLitePath  string `mapstructure:"SQLITE_PATH"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	JWTRefreshHours    int    `mapstructure:"JWT_REFRESH_HOURS"`

	// HTTP
	CORSOrigins        string `mapstructure:"CORS_ORIGINS"`
	RateLimitPerMinute int    `mapstructure:"RATE_LIMIT_PER_MINUTE"`

	// Reports
	ReportStoragePath string `mapstructure:"REPORT_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_TYPE", "sqlite")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "ranchops")
	viper.SetDefault("DB_PASSWORD", "ranchops")
	viper.SetDefault("DB_NAME", "ranchops")
	viper.SetDefault("SQLITE_PATH", "ranchops.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("JWT_REFRESH_HOURS", 168)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 1000)
	viper.SetDefault("REPORT_STORAGE_PATH", "/tmp/ranchops/reports")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
