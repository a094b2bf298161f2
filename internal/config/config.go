// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the knobs the CLI reads at startup. Everything has a
// sensible default; the app runs with no environment set at all.
type Config struct {
	// DBPath overrides the database location (default ~/.gamify.db).
	DBPath string `env:"GAMIFY_DB"`
	// PlayerName is used when creating a fresh profile.
	PlayerName string `env:"GAMIFY_PLAYER" envDefault:"Player"`
	// CatalogPath points at an optional YAML catalog override file.
	CatalogPath string `env:"GAMIFY_CATALOG"`
	// Seed pins the cosmetic RNG (classifier picks, quotes); 0 means
	// seed from the clock.
	Seed int64 `env:"GAMIFY_SEED"`
}

// Parse reads the configuration from the environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
