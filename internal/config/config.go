// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"KCSSC_DB_PATH" envDefault:"./data/kcssc.db"`
	ServerHost string `env:"KCSSC_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"KCSSC_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"KCSSC_ENV" envDefault:"development"`
	LogLevel   string `env:"KCSSC_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"KCSSC_UPLOADS_DIR" envDefault:"./uploads"`

	// Cache configuration. RedisURL is optional; when set, entity lists are
	// cached in Redis instead of process memory. CacheTTL is in seconds.
	RedisURL    string `env:"KCSSC_REDIS_URL"`
	CachePrefix string `env:"KCSSC_CACHE_PREFIX" envDefault:"kcssc:"`
	CacheTTL    int    `env:"KCSSC_CACHE_TTL" envDefault:"300"`

	// Data-service configuration. APIBaseURL points reads and writes at a
	// remote backend; UseMockData forces mock mode even if a URL is set.
	APIBaseURL  string `env:"KCSSC_API_BASE_URL"`
	UseMockData bool   `env:"KCSSC_USE_MOCK_DATA" envDefault:"true"`

	// Admin token hash for mutation endpoints (bcrypt). Empty disables auth checks.
	AdminTokenHash string `env:"KCSSC_ADMIN_TOKEN_HASH"`

	// CORS allowed origins, comma separated. "*" allows any origin.
	AllowedOrigins string `env:"KCSSC_ALLOWED_ORIGINS" envDefault:"*"`

	// Seeding configuration
	DoSeed bool `env:"KCSSC_DO_SEED" envDefault:"false"` // Enable database seeding
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

// BackendConfigured reports whether the client data service has a real
// backend to talk to. Without one it runs on the fallback dataset.
func (c Config) BackendConfigured() bool {
	return c.APIBaseURL != "" && !c.UseMockData
}

// Origins returns the parsed allowed-origins list.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("KCSSC_SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("KCSSC_CACHE_TTL must be positive, got %d", cfg.CacheTTL)
	}

	return cfg, nil
}
