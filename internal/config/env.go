// Package config loads linden's environment configuration.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from LINDEN_* environment variables. Command
// line flags take precedence over these values.
type Config struct {
	// CacheDir overrides the file cache location.
	CacheDir string `env:"LINDEN_CACHE_DIR"`

	// RedisAddr selects the Redis cache backend instead of the file cache.
	RedisAddr     string `env:"LINDEN_REDIS_ADDR"`
	RedisPassword string `env:"LINDEN_REDIS_PASSWORD"`
	RedisDB       int    `env:"LINDEN_REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"LINDEN_REDIS_PREFIX" envDefault:"linden:"`

	// MaxLength caps generation strings, in characters.
	MaxLength int `env:"LINDEN_MAX_LENGTH" envDefault:"2000000"`

	// NoCache disables caching altogether.
	NoCache bool `env:"LINDEN_NO_CACHE"`

	// CacheTimeout bounds connecting to the cache backend.
	CacheTimeout time.Duration `env:"LINDEN_CACHE_TIMEOUT" envDefault:"5s"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxLength < 0 {
		return Config{}, fmt.Errorf("parse env: LINDEN_MAX_LENGTH cannot be negative, got %d", cfg.MaxLength)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
