// Package config loads runtime settings from the environment, with an
// optional .env overlay for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the tracker service.
//
// Fields:
//   - Addr: HTTP bind address.
//   - DatabaseURL: DSN for the relational store. A postgres:// URL selects
//     the Postgres driver; anything else is treated as an SQLite path.
//   - JWTSecret: HMAC secret for signing session tokens (HS256).
//   - TokenValidity: session token lifetime.
//   - Environment: "development" or "production"; controls log format and
//     the Secure flag on session cookies.
//   - GeocoderBaseURL / GeocoderCountry: Nominatim endpoint and optional
//     country-code filter for address lookups.
type Config struct {
	Addr            string
	DatabaseURL     string
	JWTSecret       string
	TokenValidity   time.Duration
	Environment     string
	GeocoderBaseURL string
	GeocoderCountry string
}

// Load reads a .env file when present and then the process environment.
// Unset variables keep development defaults; do not use those in production.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:            ":8080",
		DatabaseURL:     "flattracker.db",
		JWTSecret:       "your-secret-key-change-this-in-production",
		TokenValidity:   7 * 24 * time.Hour,
		Environment:     "development",
		GeocoderBaseURL: "https://nominatim.openstreetmap.org",
		GeocoderCountry: "es",
	}

	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_VALIDITY_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			cfg.TokenValidity = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	if v := os.Getenv("GEOCODER_BASE_URL"); v != "" {
		cfg.GeocoderBaseURL = v
	}
	if v := os.Getenv("GEOCODER_COUNTRY"); v != "" {
		cfg.GeocoderCountry = v
	}

	return cfg
}

// SecureCookies reports whether session cookies should carry the Secure
// flag. Disabled in development so the app works over plain HTTP.
func (c *Config) SecureCookies() bool {
	return c.Environment != "development"
}
