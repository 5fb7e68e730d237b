package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"supaconfig/internal/supabase"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultHost            = "0.0.0.0"
	defaultLogLevel        = "info"
	defaultEnvironment     = "development"
	defaultAllowedOrigins  = "*"
	defaultShutdownTimeout = 30 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string
	Host            string
	ShutdownTimeout time.Duration

	// Supabase project configuration exposed to browser clients
	SupabaseURL     string
	SupabaseAnonKey string

	// CORS
	AllowedOrigins []string

	// Logging configuration
	LogLevel    string
	Environment string
}

// LoadConfig loads configuration from environment variables with defaults.
// Missing Supabase values are not an error here; they are reported per request.
func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", defaultPort),
		Host:            getEnv("HOST", defaultHost),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),

		SupabaseURL:     getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),

		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),

		LogLevel:    getEnv("LOG_LEVEL", defaultLogLevel),
		Environment: getEnv("APP_ENV", defaultEnvironment),
	}
}

// LoadEnvFiles seeds the process environment from dotenv files. Variables
// already present in the environment are never overridden. With no
// arguments it loads ./.env if one exists; named files must exist.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		err := godotenv.Load(defaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", defaultEnvFile, err)
		}
		return nil
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return nil
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration parses a Go duration string, falling back on bad input
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.WithFields(log.Fields{
			"key":     key,
			"value":   value,
			"default": defaultValue,
		}).Warn("invalid duration, using default")
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Addr returns the listen address for the standalone server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || os.Getenv("GIN_MODE") == "release"
}

// HasSupabaseConfig returns true if both Supabase values are configured
func (c *Config) HasSupabaseConfig() bool {
	return c.Supabase().Validate() == nil
}

// Supabase returns the values served by the config endpoint
func (c *Config) Supabase() supabase.EnvironmentConfig {
	return supabase.EnvironmentConfig{
		URL:     c.SupabaseURL,
		AnonKey: c.SupabaseAnonKey,
	}
}
