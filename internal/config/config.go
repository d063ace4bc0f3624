// Package config loads process settings from AGRISMART_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by every command.
type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":3000"`
	ShutdownGrace  time.Duration `env:"SHUTDOWN_GRACE" envDefault:"5s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool          `env:"LOG_DEVELOPMENT" envDefault:"false"`
	ThemeVariant   string        `env:"THEME_VARIANT" envDefault:"light"`
	// TemplatesDir, when set, overrides embedded page templates with files
	// from disk.
	TemplatesDir string `env:"TEMPLATES_DIR"`
	// UISchemaDir, when set, replaces the embedded UI schema documents.
	UISchemaDir string `env:"UISCHEMA_DIR"`
}

// Prefix is prepended to every variable name.
const Prefix = "AGRISMART_"

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads AGRISMART_* variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("config: http address is required")
	}
	if c.ShutdownGrace < 0 {
		return errors.New("config: shutdown grace must not be negative")
	}
	switch c.ThemeVariant {
	case "light", "dark":
	default:
		return fmt.Errorf("config: unknown theme variant %q", c.ThemeVariant)
	}
	return nil
}
