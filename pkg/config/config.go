// Package config loads service configuration from the environment, with a
// local .env file honored in development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Auth       AuthConfig
	Database   DatabaseConfig
	Places     PlacesConfig
	Extraction ExtractionConfig
}

type ServerConfig struct {
	Port               int
	RateLimitPerSecond int
	RateLimitBurst     int
	ShutdownTimeout    time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

type DatabaseConfig struct {
	URL string
}

type PlacesConfig struct {
	// APIKey empty means the geocoding gateway is unconfigured and place
	// extraction is disabled; that is a supported state, not an error.
	APIKey string
}

type ExtractionConfig struct {
	OverallTimeout time.Duration
}

// Load reads configuration from the environment. A missing .env is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               envInt("PORT", 8080),
			RateLimitPerSecond: envInt("RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:     envInt("RATE_LIMIT_BURST", 100),
			ShutdownTimeout:    envDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Places: PlacesConfig{
			APIKey: os.Getenv("GOOGLE_PLACES_API_KEY"),
		},
		Extraction: ExtractionConfig{
			OverallTimeout: envDuration("EXTRACTION_TIMEOUT", 10*time.Second),
		},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
