package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"
	"github.com/pwgen-vault-plugin/pwgen"
)

// Config holds the pwgen command configuration.
type Config struct {
	Batch BatchConfig
	App   AppConfig
}

// BatchConfig describes one batch of generated passwords.
type BatchConfig struct {
	Seed      int64    `envconfig:"PWGEN_SEED" default:"12344321"`
	Count     int      `envconfig:"PWGEN_COUNT" default:"5"`
	MinLength int      `envconfig:"PWGEN_MIN_LENGTH" default:"5"`
	MaxLength int      `envconfig:"PWGEN_MAX_LENGTH" default:"10"`
	Rules     []string `envconfig:"PWGEN_RULES" default:"upper,lower,digit,punct"`
}

// Validate validates the batch configuration.
func (c *BatchConfig) Validate() error {
	if c.Count <= 0 {
		return errors.New("count must be positive")
	}
	if c.MinLength < 0 {
		return errors.New("min length cannot be negative")
	}
	if c.MinLength > c.MaxLength {
		return fmt.Errorf("min length (%d) cannot be greater than max length (%d)", c.MinLength, c.MaxLength)
	}
	if c.MaxLength > pwgen.MaxLength {
		return fmt.Errorf("max length (%d) cannot be greater than %d", c.MaxLength, pwgen.MaxLength)
	}
	rules, err := pwgen.ParseRules(c.Rules)
	if err != nil {
		return err
	}
	if err := pwgen.Satisfiable(rules, c.MinLength, c.MaxLength); err != nil {
		return err
	}
	return nil
}

// ParsedRules returns the rule vector named by Rules.
func (c *BatchConfig) ParsedRules() (pwgen.Rules, error) {
	return pwgen.ParseRules(c.Rules)
}

// AppConfig holds process-level configuration.
type AppConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"` // trace, debug, info, warn, error
}

// Validate validates the app configuration.
func (c *AppConfig) Validate() error {
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s (must be one of: trace, debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// Load loads configuration from environment variables only.
// (.env loading happens in cmd/pwgen/main.go.)
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process("", &cfg.Batch); err != nil {
		return nil, fmt.Errorf("failed to load Batch config: %w", err)
	}
	if err := cfg.Batch.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Batch config: %w", err)
	}

	if err := envconfig.Process("", &cfg.App); err != nil {
		return nil, fmt.Errorf("failed to load App config: %w", err)
	}
	if err := cfg.App.Validate(); err != nil {
		return nil, fmt.Errorf("invalid App config: %w", err)
	}

	return cfg, nil
}
