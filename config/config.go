// Package config loads the bot configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Practicum API
	Practicum PracticumConfig

	// Telegram Bot
	Telegram TelegramConfig

	// Poll loop
	Poller PollerConfig

	// Observability
	Observability ObservabilityConfig
}

// PracticumConfig holds Practicum homework API settings.
type PracticumConfig struct {
	// OAuth token for the homework-statuses endpoint
	Token string

	// Endpoint override, for tests and staging
	Endpoint string

	// HTTP request timeout
	RequestTimeout time.Duration
}

// TelegramConfig holds Telegram Bot settings.
type TelegramConfig struct {
	// Bot token from @BotFather
	Token string

	// Base URL override, for tests
	BaseURL string

	// Target chat for notifications and error reports
	ChatID int64

	// HTTP request timeout
	RequestTimeout time.Duration
}

// PollerConfig holds poll loop settings.
type PollerConfig struct {
	// Fixed wait between poll cycles
	Interval time.Duration
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel string // debug, info, warn, error
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Practicum: PracticumConfig{
			Token:          getEnv("PRACTICUM_TOKEN", ""),
			Endpoint:       getEnv("PRACTICUM_ENDPOINT", ""),
			RequestTimeout: getEnvDuration("PRACTICUM_REQUEST_TIMEOUT", 30*time.Second),
		},
		Telegram: TelegramConfig{
			Token:          getEnv("TELEGRAM_TOKEN", ""),
			BaseURL:        getEnv("TELEGRAM_BASE_URL", ""),
			ChatID:         getEnvInt64("TELEGRAM_CHAT_ID", 0),
			RequestTimeout: getEnvDuration("TELEGRAM_REQUEST_TIMEOUT", 30*time.Second),
		},
		Poller: PollerConfig{
			Interval: getEnvDuration("POLL_INTERVAL", 600*time.Second),
		},
		Observability: ObservabilityConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required variables are present. A missing token is
// the only fatal condition in the whole application.
func (c *Config) Validate() error {
	var errs []string

	if c.Practicum.Token == "" {
		errs = append(errs, "PRACTICUM_TOKEN is required")
	}
	if c.Telegram.Token == "" {
		errs = append(errs, "TELEGRAM_TOKEN is required")
	}
	if c.Telegram.ChatID == 0 {
		errs = append(errs, "TELEGRAM_CHAT_ID is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
