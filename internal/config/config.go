// Package config provides configuration for the registry.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the registry configuration.
type Config struct {
	// App identity
	AppName    string
	AppVersion string

	// Server settings
	Host string
	Port int

	// CORS
	CORSOrigins []string

	// Healthcheck settings
	HealthCheckInterval time.Duration
	MaxFailures         int

	// Timeouts
	ProbeTimeout time.Duration
	FetchTimeout time.Duration
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		AppName:             getEnv("APP_NAME", "A2A registry"),
		AppVersion:          getEnv("APP_VERSION", "0.1.0"),
		Host:                getEnv("APP_HOST", "127.0.0.1"),
		Port:                getEnvInt("APP_PORT", 8000),
		CORSOrigins:         getEnvList("CORS_ORIGINS", "*"),
		HealthCheckInterval: time.Duration(getEnvInt("HEALTH_CHECK_INTERVAL", 30)) * time.Second,
		MaxFailures:         getEnvInt("MAX_FAILURES", 3),
		ProbeTimeout:        time.Duration(getEnvInt("PROBE_TIMEOUT_MS", 5000)) * time.Millisecond,
		FetchTimeout:        time.Duration(getEnvInt("FETCH_TIMEOUT_MS", 10000)) * time.Millisecond,
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvList(key, defaultVal string) []string {
	parts := strings.Split(getEnv(key, defaultVal), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
