// Package config loads the serve command's settings from the
// environment, with an optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings for the demo admin server. Every field maps
// to a NAVIO_* environment variable.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"NAVIO_ADDR" envDefault:":3000"`

	// BasePath is the prefix the app is mounted under, "" for root.
	BasePath string `env:"NAVIO_BASE_PATH" envDefault:""`

	// DefaultPath is the fallback target for unmatched locations.
	DefaultPath string `env:"NAVIO_DEFAULT_PATH" envDefault:"/dashboard"`

	// LogLevel is the slog level name: debug, info, warn or error.
	LogLevel string `env:"NAVIO_LOG_LEVEL" envDefault:"info"`

	// LogJSON switches the log output to JSON.
	LogJSON bool `env:"NAVIO_LOG_JSON" envDefault:"false"`

	// MetricsEnabled mounts the Prometheus endpoint at /metrics.
	MetricsEnabled bool `env:"NAVIO_METRICS_ENABLED" envDefault:"true"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"NAVIO_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// AllowedOrigins lists origins allowed to open a bridge connection.
	// Empty means same-origin only.
	AllowedOrigins []string `env:"NAVIO_ALLOWED_ORIGINS" envSeparator:","`
}

// Load reads a .env file when present, then parses the environment. A
// missing .env file is not an error; a malformed environment value is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid NAVIO_LOG_LEVEL %q", c.LogLevel)
	}
	if c.BasePath != "" && c.BasePath[0] != '/' {
		return fmt.Errorf("NAVIO_BASE_PATH %q must start with /", c.BasePath)
	}
	if len(c.DefaultPath) == 0 || c.DefaultPath[0] != '/' {
		return fmt.Errorf("NAVIO_DEFAULT_PATH %q must start with /", c.DefaultPath)
	}
	return nil
}
