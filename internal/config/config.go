package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"rt-portal-go/pkg/logger"
)

type Config struct {
	HTTP   HTTPConfig
	Env    string
	Portal PortalConfig
	Seed   SeedConfig
}

type HTTPConfig struct {
	Port              string
	CORSOrigins       []string
	ReadHeaderTimeout time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

type PortalConfig struct {
	Timezone string
	Locale   string
}

type SeedConfig struct {
	Enabled bool
	File    string
}

func Load(log logger.Logger) (Config, error) {
	err := loadDotEnv(log)
	if err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		HTTP: HTTPConfig{
			Port:              getEnv("HTTP_PORT", "8080"),
			CORSOrigins:       getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
			ReadHeaderTimeout: getEnvDuration("HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
			RequestTimeout:    getEnvDuration("HTTP_REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout:   getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Env: getEnv("ENV", "development"),
		Portal: PortalConfig{
			Timezone: getEnv("PORTAL_TIMEZONE", "Asia/Jakarta"),
			Locale:   getEnv("PORTAL_LOCALE", "id"),
		},
		Seed: SeedConfig{
			Enabled: getEnvBool("SEED_ENABLED", true),
			File:    getEnv("SEED_FILE", ""),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
