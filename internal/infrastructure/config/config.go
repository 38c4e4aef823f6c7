package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is the immutable process configuration, built once at startup and
// handed to each component. There is no ambient configuration state.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Hashing  HashingConfig
}

type SessionConfig struct {
	// Secret signs session tokens. Rotating it logs everyone out, which is
	// acceptable for one-hour sessions.
	Secret string        `env:"SESSION_SECRET, required"`
	TTL    time.Duration `env:"SESSION_TTL,    default=1h"`
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     int    `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=dealership"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_NAME,     default=dealership"`
	UseSSL   bool   `env:"DB_USE_SSL,  default=false"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type HashingConfig struct {
	Workers int `env:"HASH_WORKERS, default=4"`
	Cost    int `env:"HASH_COST,    default=12"`
}

// Load reads configuration from the environment. Outside production a
// .env file is merged in first for local development.
func Load(ctx context.Context) (*Config, error) {
	if env := os.Getenv("ENV"); env == "" || env == "development" {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the process runs in local development,
// where cookies drop the Secure flag and logs render for humans.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
