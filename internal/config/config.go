package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	JWTSecret      string
	JWTExpiry      time.Duration
	OpenAIAPIKey   string
	OpenAIModel    string
	SuggestTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/taskmate?parseTime=true"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiry:      24 * time.Hour,
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		SuggestTimeout: getDuration("SUGGEST_TIMEOUT", 15*time.Second),
	}

	// A missing signing secret is a startup misconfiguration, not something
	// to limp along without.
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET must be set")
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

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", v)
		return fallback
	}
	return d
}
