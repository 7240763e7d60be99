package config

import (
	"os"
	"strconv"

	"francadash/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Admin    AdminConfig
	Uploads  UploadConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// AdminConfig gates the mutating dashboard endpoints behind a shared
// password. Full authentication is handled outside this service.
type AdminConfig struct {
	Password string
}

// UploadConfig bounds spreadsheet uploads.
type UploadConfig struct {
	MaxFileBytes int64
	TempDir      string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Admin: AdminConfig{
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Uploads: UploadConfig{
			MaxFileBytes: getEnvInt64OrDefault("UPLOAD_MAX_BYTES", 10<<20),
			TempDir:      getEnvOrDefault("UPLOAD_TEMP_DIR", os.TempDir()),
		},
	}

	if config.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Admin.Password == "" {
		return nil, errors.ConfigInvalid("ADMIN_PASSWORD is required")
	}

	return config, nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
