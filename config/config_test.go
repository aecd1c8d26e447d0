package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "practicum-secret")
	t.Setenv("TELEGRAM_TOKEN", "telegram-secret")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "practicum-secret", cfg.Practicum.Token)
	assert.Equal(t, int64(12345), cfg.Telegram.ChatID)
	assert.Equal(t, 600*time.Second, cfg.Poller.Interval)
	assert.Equal(t, 30*time.Second, cfg.Practicum.RequestTimeout)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_INTERVAL", "10s")
	t.Setenv("PRACTICUM_ENDPOINT", "http://localhost:9999/statuses/")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Poller.Interval)
	assert.Equal(t, "http://localhost:9999/statuses/", cfg.Practicum.Endpoint)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestLoad_MissingRequiredTokens(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PRACTICUM_TOKEN is required")
	assert.Contains(t, err.Error(), "TELEGRAM_TOKEN is required")
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID is required")
}

func TestLoad_MissingChatIDOnly(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "practicum-secret")
	t.Setenv("TELEGRAM_TOKEN", "telegram-secret")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID is required")
	assert.NotContains(t, err.Error(), "PRACTICUM_TOKEN")
}
