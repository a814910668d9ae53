package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the OpenWeatherMap API root used unless overridden.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// AppConfig holds all process configuration. It is read once at startup and
// injected into the components that need it; no call site reads the
// environment afterwards.
type AppConfig struct {
	// OpenWeatherAPIKey may be empty. An empty key is surfaced as
	// api_key_configured=false by the status endpoint and as an auth
	// failure by fetch calls, never as a startup error.
	OpenWeatherAPIKey string

	// BaseURL of the weather provider API.
	BaseURL string

	// HTTPTimeout bounds every outbound provider request so calls fail
	// fast instead of hanging on the transport default.
	HTTPTimeout time.Duration

	Port     string
	LogLevel string
	Env      string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file is honored when present.
func Load() (*AppConfig, error) {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	cfg := &AppConfig{
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		BaseURL:           getenvDefault("OPENWEATHER_BASE_URL", DefaultBaseURL),
		Port:              getenvDefault("PORT", "8080"),
		LogLevel:          getenvDefault("LOG_LEVEL", "info"),
		Env:               getenvDefault("APP_ENV", "development"),
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	return cfg, nil
}

// APIKeyConfigured reports whether a provider credential is present.
func (c *AppConfig) APIKeyConfigured() bool {
	return c.OpenWeatherAPIKey != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
