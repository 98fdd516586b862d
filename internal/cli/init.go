// Package cli provides common CLI initialization utilities shared by
// cmd/expensetracker: logger setup, .env loading, config validation and
// store initialization.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"expensetracker/internal/config"
	applog "expensetracker/internal/log"
	"expensetracker/internal/storage"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitStore initializes the CSV repository at the given path.
// Returns the repository or exits the process on failure.
func InitStore(logger *applog.Logger, path string) *storage.CSVRepository {
	repo, err := storage.NewCSVRepository(path)
	if err != nil {
		logger.Error("Failed to initialize expense store", applog.FieldError, err, applog.FieldPath, path)
		os.Exit(1)
	}
	return repo
}
