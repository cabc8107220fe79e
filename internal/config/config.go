// Package config loads runtime configuration from the environment, with a
// .env file honoured when present. Every value has a working default so the
// server runs with no configuration at all.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration.
type Config struct {
	Addr           string        // address the HTTP server binds to
	RequestTimeout time.Duration // per-request timeout for source site fetches
	LogLevel       string        // minimum log level (debug/info/warn/error)
	UserAgent      string        // overrides the default fetch User-Agent when set
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if one exists; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:           getenv("CLUBSOCS_ADDR", ":8080"),
		RequestTimeout: getduration("CLUBSOCS_REQUEST_TIMEOUT", 30*time.Second),
		LogLevel:       getenv("CLUBSOCS_LOG_LEVEL", "info"),
		UserAgent:      os.Getenv("CLUBSOCS_USER_AGENT"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
