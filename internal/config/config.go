// Package config loads application configuration from environment
// variables. The CLI loads a local .env first (godotenv), so analysts can
// keep per-project defaults next to their ballot files.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	LogLevel  string
	Seed      int64
	OutputDir string
}

const (
	defaultSeed      = 42
	defaultOutputDir = "."
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:  getEnv("LOG_LEVEL", "INFO"),
		Seed:      defaultSeed,
		OutputDir: getEnv("GOELECT_OUTPUT_DIR", defaultOutputDir),
	}

	if seedStr := os.Getenv("GOELECT_SEED"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid GOELECT_SEED %q: %w", seedStr, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
