package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds all configuration for imgbbctl, read from the environment.
type Config struct {
	APIKey    string        `env:"IMGBB_API_KEY" validate:"required"`
	BaseURL   string        `env:"IMGBB_BASE_URL" validate:"omitempty,url"`
	Timeout   time.Duration `env:"IMGBB_TIMEOUT" envDefault:"30s"`
	UserAgent string        `env:"IMGBB_USER_AGENT"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`

	// Optional upload metadata.
	Name       string `env:"IMGBB_NAME"`
	Title      string `env:"IMGBB_TITLE"`
	Album      string `env:"IMGBB_ALBUM"`
	Expiration *int64 `env:"IMGBB_EXPIRATION"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// loadConfig reads and validates configuration from environment variables.
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
