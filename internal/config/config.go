package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel string

	// Output
	Width     int    // Wrap width for quote text; 0 means detect from the terminal
	ColorMode string // auto, always or never

	// Randomness
	Seed    uint64 // Seed for reproducible picks, only used when HasSeed is set
	HasSeed bool

	// Stats store
	StatsDSN string // SQLite DSN used by the stats command (default: in-memory)
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		ColorMode: strings.ToLower(getEnv("PQUOTE_COLOR", "auto")),
		StatsDSN:  getEnv("PQUOTE_STATS_DSN", ":memory:"),
	}

	width, err := strconv.Atoi(getEnv("PQUOTE_WIDTH", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid PQUOTE_WIDTH: %w", err)
	}
	cfg.Width = width

	if seed := getEnv("PQUOTE_SEED", ""); seed != "" {
		cfg.Seed, err = strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PQUOTE_SEED: %w", err)
		}
		cfg.HasSeed = true
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be debug, info, warn or error)", c.LogLevel)
	}

	switch c.ColorMode {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid PQUOTE_COLOR: %s (must be 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.Width < 0 {
		return fmt.Errorf("PQUOTE_WIDTH must not be negative")
	}
	return nil
}

// ValidateForStats checks configuration needed by the stats command.
func (c *Config) ValidateForStats() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.StatsDSN == "" {
		return fmt.Errorf("PQUOTE_STATS_DSN is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
