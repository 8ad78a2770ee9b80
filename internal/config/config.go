package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port      string
	Env       string
	JWTSecret string
	JWTExpiry time.Duration
}

// Load reads configuration from the environment. Session tokens expire after
// one hour; rotating JWTSecret invalidates all outstanding tokens.
func Load() Config {
	cfg := Config{
		Port:      getEnv("PORT", "5000"),
		Env:       getEnv("ENV", "development"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry: time.Hour,
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
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
