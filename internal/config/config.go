// Package config loads application configuration from environment variables.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const defaultJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port         string
	Env          string
	DatabaseDSN  string
	JWTSecret    string
	JWTExpiry    time.Duration
	GeminiAPIKey string

	// Per-IP limits. Auth covers register/login; generate covers the
	// provider round-trip endpoint, which is far more expensive.
	AuthRateRPS       float64
	AuthRateBurst     int
	GenerateRateRPS   float64
	GenerateRateBurst int
}

// Load reads configuration from environment variables with development
// defaults. GEMINI_API_KEY may be left unset — generation requests then fail
// with a provider-unavailable error instead of blocking startup.
func Load() Config {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/tripai?parseTime=true"),
		JWTSecret:    getEnv("JWT_SECRET", defaultJWTSecret),
		JWTExpiry:    7 * 24 * time.Hour,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		AuthRateRPS:       getEnvFloat("AUTH_RATE_RPS", 5),
		AuthRateBurst:     getEnvInt("AUTH_RATE_BURST", 10),
		GenerateRateRPS:   getEnvFloat("GENERATE_RATE_RPS", 1),
		GenerateRateBurst: getEnvInt("GENERATE_RATE_BURST", 3),
	}

	if cfg.Env == "production" && cfg.JWTSecret == defaultJWTSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		slog.Warn("invalid numeric value, using default", "key", key, "value", v)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid numeric value, using default", "key", key, "value", v)
	}
	return fallback
}
