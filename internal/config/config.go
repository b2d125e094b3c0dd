package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when the environment does not describe a
// usable configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// devSessionSecret is only accepted outside production.
const devSessionSecret = "niva-development-session-secret!"

// Config holds all configuration for the application.
type Config struct {
	Addr                 string        `validate:"required"`
	Env                  string        `validate:"oneof=development production test"`
	SessionSecret        string        `validate:"min=32"`
	LogFormat            string        `validate:"oneof=text json"`
	LogLevel             string        `validate:"oneof=debug info warn error"`
	StaticDir            string        `validate:"omitempty,dir"`
	VisitTTL             time.Duration `validate:"gte=0"`
	DiagnosticsRateLimit int           `validate:"gte=0"`
}

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Addr:                 valueOr(getenv("APP_ADDR"), ":8080"),
		Env:                  valueOr(getenv("APP_ENV"), "development"),
		SessionSecret:        getenv("SESSION_SECRET"),
		LogFormat:            valueOr(getenv("LOG_FORMAT"), "text"),
		LogLevel:             valueOr(getenv("LOG_LEVEL"), "debug"),
		StaticDir:            getenv("STATIC_DIR"),
		VisitTTL:             2 * time.Hour,
		DiagnosticsRateLimit: 10,
	}

	if v := getenv("VISIT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%w: VISIT_TTL: %v", ErrInvalidConfig, err)
		}
		cfg.VisitTTL = d
	}
	if v := getenv("DIAGNOSTICS_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: DIAGNOSTICS_RATE_LIMIT: %v", ErrInvalidConfig, err)
		}
		cfg.DiagnosticsRateLimit = n
	}

	if cfg.SessionSecret == "" && !cfg.IsProduction() {
		cfg.SessionSecret = devSessionSecret
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
