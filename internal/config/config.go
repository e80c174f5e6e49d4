// Package config loads the backend configuration from the environment.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the application configuration.
type Config struct {
	// Port the HTTP server listens on
	Port string

	// DatabaseDSN is the SQLite DSN
	DatabaseDSN string

	// DefaultUser is the owner identity used when the reverse proxy does
	// not set the X-User-ID header
	DefaultUser string

	// CORSAllowOrigins enables CORS for these origins when non-empty
	CORSAllowOrigins []string

	// EnablePprof registers the pprof routes
	EnablePprof bool
}

var appConfig *Config

// Load reads the configuration from the environment. A .env file is used
// when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	config := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DB_PATH", "data/pocketledger.db"),
		DefaultUser: getEnv("DEFAULT_USER", "user-1"),
		EnablePprof: os.Getenv("ENABLE_PPROF") == "true",
	}

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		config.CORSAllowOrigins = strings.Fields(origins)
	}

	appConfig = config
	return config
}

// Get returns the application configuration, loading it if necessary.
func Get() *Config {
	if appConfig == nil {
		return Load()
	}

	return appConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}
