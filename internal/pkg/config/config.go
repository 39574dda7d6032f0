package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string        `env:"PORT,          default=8080"`
	Env          string        `env:"ENV,           default=development"`
	LogLevel     string        `env:"LOG_LEVEL,     default=info"`
	ServerSecret string        `env:"SERVER_SECRET, required"`
	SessionTTL   time.Duration `env:"SESSION_TTL,   default=168h"`
	ResetTTL     time.Duration `env:"RESET_TTL,     default=12h"`

	Mongo MongoConfig
	Redis RedisConfig
	Mail  MailConfig
	Probe ProbeConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dashgrid"`
}

// RedisConfig is optional; an empty Addr disables the statistics cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	StatsTTL time.Duration `env:"STATS_CACHE_TTL, default=30s"`
}

// MailConfig configures SMTP delivery. An empty Host logs messages instead.
type MailConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT,     default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"MAIL_FROM,     default=no-reply@dashgrid.local"`
	ResetURL string `env:"RESET_URL,     default=http://localhost:8080/reset-password"`
	Workers  int    `env:"MAIL_WORKERS,  default=2"`
}

type ProbeConfig struct {
	Timeout  time.Duration `env:"PROBE_TIMEOUT,   default=5s"`
	CacheTTL time.Duration `env:"PROBE_CACHE_TTL, default=1m"`
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
