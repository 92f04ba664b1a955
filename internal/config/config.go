package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/skirmish/internal/logger"
)

// Config holds the simulation configuration
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev test prod"`

	// Seed for the combat roller; 0 picks a time-based seed
	Seed int64 `env:"SKIRMISH_SEED" envDefault:"0"`
	// CatalogPath points at a JSON or YAML armor catalog; empty uses the built-in one
	CatalogPath string `env:"SKIRMISH_CATALOG"`

	WearPerHit         int `env:"SKIRMISH_WEAR_PER_HIT" envDefault:"1" validate:"min=0,max=10"`
	VictoryHealPercent int `env:"SKIRMISH_VICTORY_HEAL_PERCENT" envDefault:"10" validate:"min=0,max=100"`
	MaxRounds          int `env:"SKIRMISH_MAX_ROUNDS" envDefault:"50" validate:"min=1,max=1000"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the configuration from the process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Logger returns the logger configuration
func (c *Config) Logger() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.Environment, c.Environment == logger.EnvironmentDev)
}
