package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds configuration settings for the prediction log
// database connection
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name"`
}

// NewDatabaseSettingsFromEnv builds DatabaseSettings from environment
// variables. The default is an on-disk SQLite database next to the binary.
func NewDatabaseSettingsFromEnv() (*DatabaseSettings, error) {
	settings := &DatabaseSettings{
		Type: getEnv("DB_TYPE", SqliteDbType),
		DSN:  getEnv("DB_DSN", "predictions.db"),
		Name: os.Getenv("DB_NAME"),
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// SQLite falls back to an in-memory database when no DSN is set
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("DSN is required for postgres databases")
	}

	return nil
}
