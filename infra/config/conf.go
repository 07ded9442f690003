package config

import (
	"os"
	"strconv"
	"time"
)

// AppConfig holds the service configuration, read once from the environment.
type AppConfig struct {
	Port           string
	APIKey         string
	EncryptKey     string
	DBPath         string
	ProbeTimeout   time.Duration
	LogLevel       string
	OpenSearchURL  string
	OpenSearchUser string
	OpenSearchPass string
	EnableAuditLog bool
}

var appConfigInstance *AppConfig

// App returns the application configuration singleton.
func App() *AppConfig {
	if appConfigInstance == nil {
		appConfigInstance = &AppConfig{
			Port:           GetEnv("APP_PORT", "9999"),
			APIKey:         GetEnv("API_KEY", ""),
			EncryptKey:     GetEnv("ENCRYPT_KEY", ""),
			DBPath:         GetEnv("DB_PATH", "paydetect.db"),
			ProbeTimeout:   GetDurationEnv("PROBE_TIMEOUT", 5*time.Second),
			LogLevel:       GetEnv("LOG_LEVEL", "info"),
			OpenSearchURL:  GetEnv("OPENSEARCH_URL", "http://localhost:9200"),
			OpenSearchUser: GetEnv("OPENSEARCH_USER", ""),
			OpenSearchPass: GetEnv("OPENSEARCH_PASSWORD", ""),
			EnableAuditLog: GetBoolEnv("ENABLE_AUDIT_LOGGING", false),
		}
	}
	return appConfigInstance
}

// GetEnv returns the value of an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBoolEnv returns the boolean value of an environment variable or a default value
func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetIntEnv returns the integer value of an environment variable or a default value
func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetDurationEnv returns the duration value of an environment variable or a default value
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
