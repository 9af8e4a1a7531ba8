package main

import (
	"os"
	"strconv"
	"time"
)

// Config holds server configuration read from the environment.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	GzipEnabled     bool
	ShutdownTimeout time.Duration
}

// Development reports whether the server runs in development mode.
func (c Config) Development() bool {
	return c.Env == "development"
}

func loadConfig() Config {
	return Config{
		Port:            getEnv("APP_PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GzipEnabled:     getEnvBool("GZIP_ENABLED", true),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
