// Package config builds the process configuration from the environment so
// main stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures everything the server needs from the environment.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"SCORING_ADDR" envDefault:":8080"`

	// LogPath redirects logs to a file; empty means stdout.
	LogPath string `env:"SCORING_LOG_PATH"`

	// RedisDSN is the store connection string.
	RedisDSN string `env:"REDIS_DSN" envDefault:"redis://127.0.0.1:6379/0"`

	// StoreMaxRetries caps retries after a transient store failure.
	StoreMaxRetries int `env:"STORE_MAX_RETRIES" envDefault:"3"`

	// StoreBackoff is the linear backoff unit between retries.
	StoreBackoff time.Duration `env:"STORE_BACKOFF" envDefault:"2s"`

	// StoreConnectTimeout bounds the initial store connection.
	StoreConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT" envDefault:"2s"`

	// Salt and AdminSalt feed token digests; defaults are applied by the
	// auth package when these are empty.
	Salt      string `env:"SCORING_SALT"`
	AdminSalt string `env:"SCORING_ADMIN_SALT"`
}

// FromEnv parses the configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
