// Package config loads numerus CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is returned when an environment value is not one of the accepted choices.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the settings shared by every numerus subcommand.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"NUMERUS_LOG_LEVEL" envDefault:"warn"`

	// LogFormat is one of text, json.
	LogFormat string `env:"NUMERUS_LOG_FORMAT" envDefault:"text"`
}

// Load parses Config from the process environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate reports ErrInvalidConfig for an unknown level or format.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: NUMERUS_LOG_LEVEL=%q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: NUMERUS_LOG_FORMAT=%q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}
