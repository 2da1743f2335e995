// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds the server settings.
type Config struct {
	Port         string
	Driver       string
	DatabasePath string
	DatabaseDSN  string
	JWTSecret    string
	BcryptCost   int
	CORSOrigin   string
}

// Load builds a Config from getenv, applying defaults and validation.
// Pass os.Getenv in production.
func Load(getenv func(string) string) (*Config, error) {
	env := func(key, defaultVal string) string {
		if val := getenv(key); val != "" {
			return val
		}
		return defaultVal
	}

	cfg := &Config{
		Port:         env("PORT", "8080"),
		Driver:       env("DATABASE_DRIVER", DriverSQLite),
		DatabasePath: env("DATABASE_PATH", "signup.db"),
		DatabaseDSN:  getenv("DATABASE_DSN"),
		JWTSecret:    getenv("JWT_SECRET"),
		BcryptCost:   12,
		CORSOrigin:   env("CORS_ORIGIN", "*"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, errors.New("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}

	if v := getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	switch cfg.Driver {
	case DriverSQLite:
	case DriverMySQL:
		if cfg.DatabaseDSN == "" {
			return nil, errors.New("DATABASE_DSN is required when DATABASE_DRIVER=mysql")
		}
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.Driver)
	}

	return cfg, nil
}
