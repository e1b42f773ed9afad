// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the CLI's environment-driven configuration. Zero values fall
// back to sensible defaults at the call sites.
type Config struct {
	// DBPath overrides the expedition database location.
	DBPath string `env:"EXPEDITION_DB"`
	// MountainsFile points at a YAML file with custom mountains.
	MountainsFile string `env:"EXPEDITION_MOUNTAINS"`
	// Seed fixes the weather seed; 0 means derive one per expedition.
	Seed int64 `env:"EXPEDITION_SEED"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
