package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	DatabaseURL     string
	ServerPort      string
	BaseURL         string
	FrontendURL     string
	LLMAPIKey       string
	AIProvider      string
	AIModel         string
	AIBaseURL       string
	AITimeout       time.Duration
	AIMaxRetries    int
	EnableHSTS      bool
	OIDCProvider    string
	RedisURL        string
	ServerDebugMode bool
	OTELEnabled     bool
	OTELEndpoint    string
}

// Load loads configuration from environment variables. The language-model
// credential is required: without it the process must not start.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		LLMAPIKey:       getEnv("LLM_API_KEY", ""),
		AIProvider:      getEnv("AI_PROVIDER", "openai"),
		AIModel:         getEnv("AI_MODEL", ""),
		AIBaseURL:       getEnv("AI_BASE_URL", ""),
		AITimeout:       time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 30)) * time.Second,
		AIMaxRetries:    getEnvInt("AI_MAX_RETRIES", 0),
		EnableHSTS:      getEnvBool("ENABLE_HSTS", false),
		OIDCProvider:    getEnv("OIDC_PROVIDER", "cognito"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		ServerDebugMode: getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:     getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required (language-model gateway credential)")
	}

	if cfg.AITimeout <= 0 {
		return nil, fmt.Errorf("AI_TIMEOUT_SECONDS must be positive")
	}

	if cfg.AIMaxRetries < 0 {
		return nil, fmt.Errorf("AI_MAX_RETRIES cannot be negative")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
