package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every environment-supplied knob the server reads.
// It is loaded once in main and passed down by constructor; nothing
// else in the codebase touches os.Getenv.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// Postgres. PG_HOST unset means the whole process runs in fallback
	// mode against the in-memory store.
	PGHost     string `env:"PG_HOST"`
	PGPort     string `env:"PG_PORT" envDefault:"5432"`
	PGUser     string `env:"PG_USER" envDefault:"postgres"`
	PGPassword string `env:"PG_PASSWORD"`
	PGDatabase string `env:"PG_DB" envDefault:"campushub"`

	// Redis. Unset REDIS_HOST keeps sessions and the directory snapshot
	// in process memory.
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SnapshotTTL   time.Duration `env:"SNAPSHOT_TTL" envDefault:"30s"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DatabaseConfigured reports whether a Postgres backend was supplied.
// This is the single feature flag behind fallback mode.
func (c *Config) DatabaseConfigured() bool { return c.PGHost != "" }

// RedisConfigured reports whether a Redis instance was supplied.
func (c *Config) RedisConfigured() bool { return c.RedisHost != "" }

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisAddr builds the Redis host:port address.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
