package config

import (
	"os"
	"testing"
	"time"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := LoadAppConfig(logger)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 720*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.VerificationTokenTTL)
	assert.Equal(t, "default", cfg.Seed.Tier)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Second, cfg.RateLimit.Window)
	assert.Contains(t, cfg.DB.Url, "postgres://")
}

func TestLoadAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_SESSION_TTL", "1h")
	t.Setenv("SEED_TIER", "extended")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "50")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg, err := LoadAppConfig(logger)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "extended", cfg.Seed.Tier)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 50, cfg.RateLimit.MaxRequests)
}
