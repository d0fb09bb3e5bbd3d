package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultAPIBase = "http://localhost:8000"

type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	LogLevel    string
	LogJSON     bool

	// Stub collaborator server
	AppPort string
}

// Load reads configuration from the environment, with a .env file as
// fallback. Every knob has a safe default so the client runs with an
// empty environment against a local collaborator.
func Load() *Config {
	_ = godotenv.Load()

	apiBase := os.Getenv("CINEMA_API_URL")
	if apiBase == "" {
		apiBase = defaultAPIBase
	}

	timeout := 10 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}

	return &Config{
		APIBaseURL:  apiBase,
		HTTPTimeout: timeout,
		LogLevel:    logLevel,
		LogJSON:     os.Getenv("LOG_JSON") == "true",
		AppPort:     port,
	}
}
