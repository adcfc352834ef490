// Package config loads server settings from the environment. A .env file, if
// present, is read first; variables already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingSecret = errors.New("JWT_SECRET is required")

// Config holds the server settings.
type Config struct {
	Port           int           `mapstructure:"PORT"`
	DBPath         string        `mapstructure:"DB_PATH"`
	CatalogDir     string        `mapstructure:"CATALOG_DIR"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	TokenDuration  time.Duration `mapstructure:"TOKEN_DURATION"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	MetricsEnabled bool          `mapstructure:"METRICS_ENABLED"`
}

var defaults = map[string]any{
	"PORT":            8080,
	"DB_PATH":         "./data/carwash.db",
	"CATALOG_DIR":     "",
	"JWT_SECRET":      "",
	"TOKEN_DURATION":  "24h",
	"LOG_LEVEL":       "info",
	"METRICS_ENABLED": true,
}

// Load reads the given .env files (default ".env") and the environment.
// Missing .env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}

	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
