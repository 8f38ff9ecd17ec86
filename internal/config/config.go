// ABOUTME: Configuration loader for the admin console
// ABOUTME: Loads settings from environment variables with defaults; .env is picked up when present

package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/manish201258/Hichhki-admin/internal/client"
	"github.com/manish201258/Hichhki-admin/internal/tokenstore"
)

type Config struct {
	// Client
	APIBaseURL string // base of the admin API, fixed per deployment
	ConfigDir  string // where credentials.json lives

	// Stub server (local development API)
	StubPort           string
	StubJWTSecret      string
	StubAdminEmail     string
	StubAdminPassword  string
	StubAccessTTLMin   int    // access token lifetime in minutes
	StubRefreshTTLDays int    // refresh token lifetime in days
	StubRedisAddr      string // optional; empty keeps refresh tokens in memory
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL: getEnv("HICHHKI_ADMIN_API_URL", client.DefaultBaseURL),
		ConfigDir:  getEnv("HICHHKI_ADMIN_CONFIG_DIR", tokenstore.DefaultDir()),

		StubPort:           getEnv("STUB_PORT", "3000"),
		StubJWTSecret:      getEnv("STUB_JWT_SECRET", "dev-only-secret"),
		StubAdminEmail:     getEnv("STUB_ADMIN_EMAIL", "admin@hichhki.test"),
		StubAdminPassword:  getEnv("STUB_ADMIN_PASSWORD", "secret"),
		StubAccessTTLMin:   getEnvInt("STUB_ACCESS_TTL_MIN", 15),
		StubRefreshTTLDays: getEnvInt("STUB_REFRESH_TTL_DAYS", 7),
		StubRedisAddr:      os.Getenv("STUB_REDIS_ADDR"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
