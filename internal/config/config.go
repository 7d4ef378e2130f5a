// Package config loads the translator configuration from the environment.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config holds every setting the Lambda and the CLI read at startup.
type Config struct {
	Environment  string `env:"ENVIRONMENT" default:"dev"`
	LogLevel     string `env:"LOG_LEVEL" default:"info"`
	LogFormat    string `env:"LOG_FORMAT" default:"json"`
	Dialect      string `env:"DIALECT" default:"pirate"`
	DialectFile  string `env:"DIALECT_FILE"`
	HistorySize  int    `env:"HISTORY_SIZE" default:"25"`
	CacheSize    int    `env:"CACHE_SIZE" default:"256"`
	FunctionName string `env:"AWS_LAMBDA_FUNCTION_NAME"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (Config, error) {
	// .env is optional; Lambda and CI provide real environment variables.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no component can use.
func (c Config) Validate() error {
	if c.HistorySize < 0 {
		return fmt.Errorf("config: HISTORY_SIZE must not be negative, got %d", c.HistorySize)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: CACHE_SIZE must not be negative, got %d", c.CacheSize)
	}
	return nil
}
