// Package config provides configuration management for Kindred.
// It loads settings from environment variables with the KINDRED_ prefix
// and provides sensible defaults for all configuration options.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration settings for the Kindred application.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Features FeaturesConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port         int     // Server port (default: 7373)
	Host         string  // Server host (default: 127.0.0.1)
	RateLimitRPS float64 // Sustained requests per second (default: 50)
	RateBurst    int     // Rate limit burst size (default: 100)
}

// StorageConfig contains snapshot source configuration.
type StorageConfig struct {
	// SourceEngine selects the snapshot source: file, sqlite, postgres
	// (default: file).
	SourceEngine string

	// GraphPath is the graph document path for the file source
	// (default: ./data/family.yaml).
	GraphPath string

	// SQLitePath is the database path for the sqlite source
	// (default: ./data/kindred.db).
	SQLitePath string

	// PostgresDSN is the connection string for the postgres source.
	PostgresDSN string
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	EnableWatch bool // Enable the /api/watch websocket (default: true)
}

// LoadConfig loads configuration from environment variables with sensible
// defaults. All environment variables use the KINDRED_ prefix.
func LoadConfig() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvInt("KINDRED_PORT", 7373),
			Host:         getEnv("KINDRED_HOST", "127.0.0.1"),
			RateLimitRPS: getEnvFloat("KINDRED_RATE_LIMIT_RPS", 50),
			RateBurst:    getEnvInt("KINDRED_RATE_BURST", 100),
		},
		Storage: StorageConfig{
			SourceEngine: getEnv("KINDRED_SOURCE_ENGINE", "file"),
			GraphPath:    getEnv("KINDRED_GRAPH_PATH", "./data/family.yaml"),
			SQLitePath:   getEnv("KINDRED_SQLITE_PATH", "./data/kindred.db"),
			PostgresDSN:  getEnv("KINDRED_POSTGRES_DSN", ""),
		},
		Features: FeaturesConfig{
			EnableWatch: getEnvBool("KINDRED_ENABLE_WATCH", true),
		},
	}, nil
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
// value. Unparseable values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat retrieves a float environment variable or returns a default
// value. Unparseable values fall back to the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default
// value. It recognizes "true", "1", "yes" and "false", "0", "no".
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch value {
		case "true", "1", "yes", "True", "TRUE", "Yes", "YES":
			return true
		case "false", "0", "no", "False", "FALSE", "No", "NO":
			return false
		}
	}
	return defaultValue
}
