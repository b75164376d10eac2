package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config is the process configuration, read from the environment by Load.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`

	// OTLP exporters read their endpoints from the standard OTEL_* variables.
	ServiceName       string `env:"OTEL_SERVICE_NAME" envDefault:"agriservice-api"`
	OTelExportEnabled bool   `env:"OTEL_EXPORT_ENABLED" envDefault:"true"`
	OTelLogsEnabled   bool   `env:"OTEL_LOGS_ENABLED" envDefault:"false"`

	// Rate limiting is disabled when RedisAddr is empty.
	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	RedisDB             int           `env:"REDIS_DB" envDefault:"0"`
	RedisConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	ContactRateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"5"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"1m"`
	BookingRateLimit  int           `env:"BOOKING_RATE_LIMIT" envDefault:"20"`
	BookingRateWindow time.Duration `env:"BOOKING_RATE_WINDOW" envDefault:"1m"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ContactRateLimit <= 0 || c.BookingRateLimit <= 0 {
		return fmt.Errorf("rate limits must be positive (contact=%d, booking=%d)", c.ContactRateLimit, c.BookingRateLimit)
	}
	if c.ContactRateWindow <= 0 || c.BookingRateWindow <= 0 {
		return fmt.Errorf("rate windows must be positive (contact=%s, booking=%s)", c.ContactRateWindow, c.BookingRateWindow)
	}
	return nil
}

// RateLimitEnabled reports whether a Redis backend was configured.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisAddr != ""
}
