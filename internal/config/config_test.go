package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "LOG_PRETTY", "DB_PATH", "WORDS_FILE", "JWT_EXPIRES_DAYS", "APP_ENV"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, "./data/scramble.db", cfg.DBPath)
	assert.Empty(t, cfg.WordsFile)
	assert.Equal(t, 14, cfg.JWTExpiresDays)
	assert.False(t, cfg.Production)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("WORDS_FILE", "/tmp/start.txt")
	t.Setenv("JWT_EXPIRES_DAYS", "3")
	t.Setenv("APP_ENV", "production")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "/tmp/start.txt", cfg.WordsFile)
	assert.Equal(t, 3, cfg.JWTExpiresDays)
	assert.True(t, cfg.Production)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("JWT_EXPIRES_DAYS", "soon")
	t.Setenv("LOG_PRETTY", "maybe")
	cfg := Load()
	assert.Equal(t, 14, cfg.JWTExpiresDays)
	assert.False(t, cfg.LogPretty)
}
