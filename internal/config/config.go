package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all client configuration
type Config struct {
	// API configuration
	API APIConfig

	// Session configuration
	Session SessionConfig

	// List view configuration
	List ListConfig

	// Logging configuration
	Log LogConfig
}

// APIConfig holds settings for the remote CRM API
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds the persisted session location
type SessionConfig struct {
	File string
}

// ListConfig holds task list presentation settings
type ListConfig struct {
	AdminPageSize int
	UserPageSize  int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from a .env file (if present) and the
// environment
func Load() (*Config, error) {
	// Missing .env is fine; real environment always wins
	_ = godotenv.Load()

	cfg := &Config{
		API: APIConfig{
			BaseURL: getEnv("CRM_API_BASE_URL", "http://localhost:5000/api"),
			Timeout: getDurationEnv("CRM_HTTP_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			File: getEnv("CRM_SESSION_FILE", defaultSessionFile()),
		},
		List: ListConfig{
			AdminPageSize: getIntEnv("CRM_ADMIN_PAGE_SIZE", 9),
			UserPageSize:  getIntEnv("CRM_USER_PAGE_SIZE", 10),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "pretty"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("CRM_API_BASE_URL is required")
	}
	if c.List.AdminPageSize < 1 || c.List.UserPageSize < 1 {
		return fmt.Errorf("page sizes must be at least 1")
	}
	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".config", "leadctl", "session.json")
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
