package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tripai/tripai-go/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("AUTH_RATE_RPS", "")
	t.Setenv("AUTH_RATE_BURST", "")
	t.Setenv("GENERATE_RATE_RPS", "")
	t.Setenv("GENERATE_RATE_BURST", "")

	cfg := config.Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "development", cfg.Env)
	require.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	require.Empty(t, cfg.GeminiAPIKey)
	require.Equal(t, 5.0, cfg.AuthRateRPS)
	require.Equal(t, 10, cfg.AuthRateBurst)
	require.Equal(t, 1.0, cfg.GenerateRateRPS)
	require.Equal(t, 3, cfg.GenerateRateBurst)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "staging")
	t.Setenv("DATABASE_DSN", "user:pass@tcp(db:3306)/tripai?parseTime=true")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("GEMINI_API_KEY", "abc123")

	cfg := config.Load()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "staging", cfg.Env)
	require.Equal(t, "user:pass@tcp(db:3306)/tripai?parseTime=true", cfg.DatabaseDSN)
	require.Equal(t, "super-secret", cfg.JWTSecret)
	require.Equal(t, "abc123", cfg.GeminiAPIKey)
}

func TestLoad_RateLimitOverrides(t *testing.T) {
	t.Setenv("AUTH_RATE_RPS", "2.5")
	t.Setenv("AUTH_RATE_BURST", "4")
	t.Setenv("GENERATE_RATE_RPS", "0.5")
	t.Setenv("GENERATE_RATE_BURST", "1")

	cfg := config.Load()

	require.Equal(t, 2.5, cfg.AuthRateRPS)
	require.Equal(t, 4, cfg.AuthRateBurst)
	require.Equal(t, 0.5, cfg.GenerateRateRPS)
	require.Equal(t, 1, cfg.GenerateRateBurst)
}

func TestLoad_RateLimitInvalidFallsBack(t *testing.T) {
	t.Setenv("AUTH_RATE_RPS", "plenty")
	t.Setenv("AUTH_RATE_BURST", "-")

	cfg := config.Load()

	require.Equal(t, 5.0, cfg.AuthRateRPS)
	require.Equal(t, 10, cfg.AuthRateBurst)
}
