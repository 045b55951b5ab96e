package config

import (
	"fmt"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the auction engine
type Config struct {
	// Server
	Port string `conf:"default:8080,env:PORT"`

	// Closeout
	CloseoutSchedule string `conf:"default:@every 1m,env:CLOSEOUT_SCHEDULE"`

	// Logging
	LogLevel string `conf:"default:info,env:LOG_LEVEL"`

	// Notification. Empty SMTPAddr selects the log-only notifier.
	SMTPAddr string `conf:"env:SMTP_ADDR"`
	SMTPFrom string `conf:"default:auctions@localhost,env:SMTP_FROM"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
