package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/chatkit/pkg/httpx"
)

// DevSessionSecret is the fixed fallback signing secret for non-production
// environments. Refusing to boot prod without a real secret happens in
// Application.New, not here.
const DevSessionSecret = "chatkit-dev-secret"

type Config struct {
	SessionSecret     string        // Signing secret for session tokens (env wins over file)
	SessionSecretFile string        // Optional: path to a secret file, generated on first run
	SessionTTL        time.Duration // Session token validity window (default: 1h)

	IdPIssuer   string   // Required: issuer claim expected on identity-provider tokens
	IdPJWKSURL  string   // Required: where to fetch the provider's JWKS
	IdPAudience []string // Optional: audience values required on provider tokens

	DatabaseFile          string        // Path to SQLite database file (default: ./chatkit.db)
	UsageRetention        time.Duration // How long usage events are kept (default: 90 days)
	ConversationRetention time.Duration // Idle window before conversations are dropped (default: 180 days, 0 disables)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		SessionSecret:     os.Getenv("CHATKIT_SESSION_SECRET"),
		SessionSecretFile: os.Getenv("CHATKIT_SESSION_SECRET_FILE"),
		SessionTTL:        getEnvDurationOrDefault("CHATKIT_SESSION_TTL", time.Hour),

		IdPIssuer:  os.Getenv("IDP_ISSUER"),
		IdPJWKSURL: os.Getenv("IDP_JWKS_URL"),

		DatabaseFile:          getEnvOrDefault("CHATKIT_DATABASE_FILE", "chatkit.db"),
		UsageRetention:        getEnvDurationOrDefault("USAGE_RETENTION", 90*24*time.Hour),
		ConversationRetention: getEnvDurationOrDefault("CONVERSATION_RETENTION", 180*24*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	// Space-delimited audience list, matching how scopes travel elsewhere
	cfg.IdPAudience = httpx.ParseSpaceDelimitedFields(os.Getenv("IDP_AUDIENCE"))

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
