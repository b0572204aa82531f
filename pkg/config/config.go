package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the storefront's environment-driven configuration.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// StoreBackend selects cart persistence: file, sqlite or memory.
	StoreBackend string `env:"STORE_BACKEND" envDefault:"file"`
	// StorePath is the data directory for the file backend, or the
	// database file for the sqlite backend.
	StorePath string `env:"STORE_PATH" envDefault:"./data"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
