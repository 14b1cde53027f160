// Package config provides centralized configuration loaded from environment
// variables. The CLI loads .env first, so a local config file and real
// environment variables both end up here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the CLI and the Hypixel client need.
type Config struct {
	// Hypixel API
	APIKey            string
	BaseURL           string
	RequestsPerMinute int
	HTTPTimeout       time.Duration

	// Record cache
	CacheEnabled bool
	CacheTTL     time.Duration

	Debug bool
}

// Load reads configuration from environment variables with sensible
// defaults. HYPIXEL_API_KEY is required; the legacy API_KEY name is
// honored as a fallback.
func Load() (*Config, error) {
	apiKey := envOr("HYPIXEL_API_KEY", envOr("API_KEY", ""))
	if apiKey == "" {
		return nil, fmt.Errorf("HYPIXEL_API_KEY must be set (in the environment or a .env file)")
	}

	return &Config{
		APIKey:            apiKey,
		BaseURL:           envOr("HYPIXEL_API_URL", "https://api.hypixel.net"),
		RequestsPerMinute: envInt("HYPIXEL_REQUESTS_PER_MINUTE", 120),
		HTTPTimeout:       time.Duration(envInt("HYPIXEL_HTTP_TIMEOUT_SECONDS", 30)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),
		CacheTTL:     time.Duration(envInt("CACHE_TTL_MINUTES", 5)) * time.Minute,

		Debug: envBool("DEBUG", false),
	}, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}
