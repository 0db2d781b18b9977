// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nvoss/ccdash/internal/models"
)

// Config holds the application configuration.
type Config struct {
	// LogRoot is the Claude Code projects directory holding the
	// per-project JSONL transcripts.
	LogRoot string
	// DefaultRange is the reporting window shown on startup.
	DefaultRange models.TimeRange
	// DailyCostAlert triggers a desktop notification when today's cost
	// crosses this threshold (USD). Zero disables alerts.
	DailyCostAlert float64
	// WatchDebounce is how long to wait after a filesystem event before
	// reloading, so bursts of writes collapse into one refresh.
	WatchDebounce time.Duration
}

// Default values
const (
	defaultWatchDebounce = 2 * time.Second
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		LogRoot:        getEnvString("CCDASH_LOG_ROOT", DefaultLogRoot()),
		DefaultRange:   models.ParseTimeRange(getEnvString("CCDASH_DEFAULT_RANGE", "30d")),
		DailyCostAlert: getEnvFloat("CCDASH_DAILY_COST_ALERT", 0),
		WatchDebounce:  getEnvDuration("CCDASH_WATCH_DEBOUNCE", defaultWatchDebounce),
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "ccdash", ".env"),
			filepath.Join(home, ".ccdash", ".env"),
		)
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
