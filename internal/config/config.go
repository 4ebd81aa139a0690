// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Development defaults that must never reach production.
const (
	devSessionSecret = "dev-only-secret-key-change-in-prod!!"
	devAdminPassword = "changeme"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"EVENTSITE_DB_PATH" envDefault:"./data/eventsite.db"`
	SessionSecret string `env:"EVENTSITE_SESSION_SECRET" envDefault:"dev-only-secret-key-change-in-prod!!"`
	ServerHost    string `env:"EVENTSITE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"EVENTSITE_SERVER_PORT" envDefault:"5000"`
	Env           string `env:"EVENTSITE_ENV" envDefault:"development"`
	LogLevel      string `env:"EVENTSITE_LOG_LEVEL" envDefault:"info"`

	// Seed credentials for the single admin account. Only consulted when
	// the users table is empty at startup.
	AdminUsername string `env:"EVENTSITE_ADMIN_USERNAME" envDefault:"rherren"`
	AdminEmail    string `env:"EVENTSITE_ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"EVENTSITE_ADMIN_PASSWORD" envDefault:"changeme"`

	// Cache configuration
	RedisURL string `env:"EVENTSITE_REDIS_URL"`                  // Optional Redis URL for distributed caching
	CacheTTL int    `env:"EVENTSITE_CACHE_TTL" envDefault:"300"` // Default cache TTL in seconds
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("EVENTSITE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// The development defaults are published in this repository, so they
	// must be rejected outside development.
	if !cfg.IsDevelopment() {
		if cfg.SessionSecret == devSessionSecret {
			return nil, fmt.Errorf("EVENTSITE_SESSION_SECRET is the development default and must not be used in %s; "+
				"generate a secure secret with: openssl rand -base64 32", cfg.Env)
		}
		if cfg.AdminPassword == devAdminPassword {
			return nil, fmt.Errorf("EVENTSITE_ADMIN_PASSWORD is the development default and must not be used in %s", cfg.Env)
		}
	} else {
		if cfg.AdminPassword == devAdminPassword {
			slog.Warn("using default admin seed password; set EVENTSITE_ADMIN_PASSWORD before deploying")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("EVENTSITE_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
