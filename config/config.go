// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	// Caché de evaluaciones; sin REDIS_ADDR se usa una caché en memoria
	RedisAddr   string        `env:"REDIS_ADDR"`
	RedisPrefix string        `env:"REDIS_PREFIX" envDefault:"arriendo-compra:"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	MaxSimulations       int `env:"MAX_SIMULATIONS" envDefault:"100000"`
	MaxStoredSimulations int `env:"MAX_STORED_SIMULATIONS" envDefault:"50"`

	RateLimit  int           `env:"RATE_LIMIT" envDefault:"5"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the given .env files (a missing file is not an error) and parses
// the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "ARRIENDO_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxSimulations <= 0 {
		return errors.New("MAX_SIMULATIONS debe ser positivo")
	}
	if c.RateLimit <= 0 || c.RateWindow <= 0 {
		return errors.New("RATE_LIMIT y RATE_WINDOW deben ser positivos")
	}
	return nil
}
