// Package config loads CLI defaults from .env / environment variables and the
// optional YAML body profile.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds defaults that flags may override.
type Config struct {
	Debug           bool    `env:"NUTRITION_DEBUG"`
	ProteinActivity string  `env:"NUTRITION_PROTEIN_ACTIVITY" envDefault:"moderate"`
	WaterFactor     float64 `env:"NUTRITION_WATER_FACTOR"     envDefault:"1.0"`
	ProfilePath     string  `env:"NUTRITION_PROFILE"`
}

// Load reads envFile (if it exists) into the process environment, then parses
// Config from it. Variables already set in the environment win over the file.
// A missing envFile is not an error; an empty path skips the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
