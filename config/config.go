package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAPIBaseURL is used when API_BASE_URL is not set.
const DefaultAPIBaseURL = "http://localhost:8000/api"

// Config holds the site's runtime settings, read from the environment.
type Config struct {
	Port    string
	GinMode string

	// Reservation service
	APIBaseURL string
	// APITimeout of zero leaves the HTTP client's default (no timeout).
	APITimeout time.Duration

	CORSOrigins []string
	LogLevel    string

	SessionCookie string
	SessionTTL    time.Duration

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// Load reads configuration from environment variables. Call godotenv.Load
// first if a .env file should be honoured.
func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		APITimeout: getEnvAsDuration("API_TIMEOUT", 0),

		CORSOrigins: ParseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		SessionCookie: getEnv("SESSION_COOKIE", "skylight_session"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 2*time.Hour),

		ReadTimeout:       getEnvAsDuration("READ_TIMEOUT", 10*time.Second),
		ReadHeaderTimeout: getEnvAsDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		WriteTimeout:      getEnvAsDuration("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// ParseCorsOrigins splits a comma separated origin list. An empty list
// allows any origin.
func ParseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// bare numbers are seconds
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
