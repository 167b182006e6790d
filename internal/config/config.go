// Package config loads process configuration from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the herostats process settings. Formula coefficients are
// configured separately through the constants YAML file named here.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"HEROSTATS_ADDR" envDefault:":8080"`

	// DatasetPath names the scraped snapshot JSON to serve. Empty falls
	// back to Redis when configured, then to the embedded sample.
	DatasetPath string `env:"HEROSTATS_DATASET_PATH"`

	// RedisAddr enables the Redis-backed hero repository when set.
	RedisAddr string `env:"HEROSTATS_REDIS_ADDR"`

	// ConstantsPath names the formula-coefficients YAML overlay.
	ConstantsPath string `env:"HEROSTATS_CONSTANTS_PATH"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"HEROSTATS_LOG_LEVEL" envDefault:"info"`
}

// LoadFromEnv reads the configuration and applies defensive defaults, so a
// partially configured environment still yields a servable process.
func LoadFromEnv() Config {
	var cfg Config
	_ = env.Parse(&cfg)
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}

// SlogLevel maps the configured level name to a slog level. Unknown names
// fall back to info rather than failing startup.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
