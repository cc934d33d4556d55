package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the content service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"3000"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseHost     string `env:"DB_HOST" default:"localhost"`
	DatabasePort     string `env:"DB_PORT" default:"10708"`
	DatabaseName     string `env:"DB_NAME" default:"content_db"`
	DatabaseUser     string `env:"DB_USER" default:"content_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`

	// TLS towards the database. When enabled the server verifies the
	// database certificate against the configured root CA bundle.
	DatabaseSSLEnabled  bool   `env:"DB_SSL_ENABLED" default:"false"`
	DatabaseSSLRootCert string `env:"DB_SSL_ROOT_CERT" default:"./ca-certificate.crt"`

	// Features
	EnableMetrics bool `env:"ENABLE_METRICS" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "3000")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "localhost")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "10708")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "content_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "content_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	config.DatabaseSSLEnabled = getBoolEnv("DB_SSL_ENABLED", false)
	config.DatabaseSSLRootCert = getEnvOrDefault("DB_SSL_ROOT_CERT", "./ca-certificate.crt")

	// Feature flags
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validatePort(c.Port, "port"); err != nil {
		return err
	}

	if err := validatePort(c.DatabasePort, "database port"); err != nil {
		return err
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Certificate verification needs a CA bundle to verify against
	if c.DatabaseSSLEnabled && strings.TrimSpace(c.DatabaseSSLRootCert) == "" {
		return fmt.Errorf("DB_SSL_ROOT_CERT is required when DB_SSL_ENABLED is true")
	}

	return nil
}

func validatePort(value, name string) error {
	port, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %s", name, value)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535: %s", name, value)
	}
	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
