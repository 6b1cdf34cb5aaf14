package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Reminders
	EmailFrom    string
	ResendAPIKey string
	CronSecret   string

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName: envString("APP_NAME", "Goal Tracker"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/goaltracker.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// RESEND_API_KEY optional in development (emails are logged instead)
		EmailFrom:    envString("EMAIL_FROM", "Goal Tracker <onboarding@resend.dev>"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),
		CronSecret:   envString("CRON_SECRET", ""),

		SentryDSN: envString("SENTRY_DSN", ""),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures services the reminder pipeline depends on are
// configured for production deployments. Development falls back to log mode.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
	if cfg.CronSecret == "" {
		slog.Error("production deployment requires CRON_SECRET",
			"hint", "the reminder send endpoint is unauthenticated without it")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
