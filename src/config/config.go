package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port            string
	AllowedOrigins  string
	StaticDir       string
	ActivitiesFile  string
	RedisURI        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// NotificationsEnabled reports whether a Redis backend was configured.
func (c Config) NotificationsEnabled() bool {
	return c.RedisURI != ""
}

// Load reads .env (if present) and then the process environment.
// The returned bool is false when no .env file was found.
func Load(envFiles ...string) (Config, bool, error) {
	foundEnv := godotenv.Load(envFiles...) == nil
	cfg, err := FromEnv()
	return cfg, foundEnv, err
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:           getEnv("APP_URI", "8888"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		ActivitiesFile: os.Getenv("ACTIVITIES_FILE"),
		RedisURI:       os.Getenv("REDIS_URI"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	var errs []error
	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}
	cfg.ShutdownTimeout = timeout

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL: unsupported level %q", cfg.LogLevel))
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT: unsupported format %q", cfg.LogFormat))
	}
	if strings.ContainsAny(cfg.Port, ":/ ") {
		errs = append(errs, fmt.Errorf("APP_URI: expected a port, got %q", cfg.Port))
	}

	return cfg, errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
