package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	APIBaseURL      string
	SessionFile     string
	HTTPAddr        string
	LogLevel        string
	Env             string // dev|prod
	SentryDSN       string
	Email           string // optional auto-login credentials
	Password        string
	RefreshInterval time.Duration
	ExportFile      string // empty disables the snapshot job
	ExportInterval  time.Duration
}

func Load() (*Config, error) {
	refresh, err := parseDuration(os.Getenv("REFRESH_INTERVAL"), time.Minute)
	if err != nil {
		return nil, fmt.Errorf("REFRESH_INTERVAL: %w", err)
	}
	exportEvery, err := parseDuration(os.Getenv("EXPORT_INTERVAL"), time.Hour)
	if err != nil {
		return nil, fmt.Errorf("EXPORT_INTERVAL: %w", err)
	}

	cfg := &Config{
		APIBaseURL:      getenv("API_BASE_URL", "http://localhost:8080"),
		SessionFile:     getenv("SESSION_FILE", "session.json"),
		HTTPAddr:        getenv("HTTP_ADDR", ":9090"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		Env:             getenv("ENV", "dev"),
		SentryDSN:       os.Getenv("SENTRY_DSN"),
		Email:           os.Getenv("CONSOLE_EMAIL"),
		Password:        os.Getenv("CONSOLE_PASSWORD"),
		RefreshInterval: refresh,
		ExportFile:      os.Getenv("EXPORT_FILE"),
		ExportInterval:  exportEvery,
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("bad duration %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %q must be positive", s)
	}
	return d, nil
}
