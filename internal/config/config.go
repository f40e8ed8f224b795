// Package config reads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the game reads from its environment. Flags may
// still override individual fields at startup.
type Config struct {
	// WordsFile points at a newline-separated word list. Empty means the
	// embedded default list.
	WordsFile string `env:"WORDS_FILE"`
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Parse loads Config from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
