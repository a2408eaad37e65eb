// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHost() string
	GetPort() int
	Addr() string
	IsDebug() bool
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// StaticConfig provides settings for the static front-end bundle.
type StaticConfig interface {
	GetStaticFolder() string
	GetStaticURLPath() string
	EnsureDirectories() error
}

// AIConfig provides settings for the AI provider integration.
type AIConfig interface {
	GetGeminiAPIKey() string
	GetAIModels() []string
	GetAIDefaultModel() string
	IsAIProviderEnabled() bool
}

// RateLimitConfig provides settings for the generation endpoints' limiter.
type RateLimitConfig interface {
	GetGenerationRatePerMinute() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                     string
	Host                    string
	Port                    int
	Debug                   bool
	StaticFolder            string
	StaticURLPath           string
	CORSAllowAll            bool
	CORSOrigins             []string
	GeminiAPIKey            string
	AIModels                []string
	AIDefaultModel          string
	GenerationRatePerMinute int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHost() string          { return c.Host }
func (c *Config) GetPort() int             { return c.Port }
func (c *Config) IsDebug() bool            { return c.Debug }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// StaticConfig implementation
func (c *Config) GetStaticFolder() string  { return c.StaticFolder }
func (c *Config) GetStaticURLPath() string { return c.StaticURLPath }

// EnsureDirectories creates every directory owned by the configuration.
// A failure here means the process cannot serve its front-end and must not start.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.StaticFolder} {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("directory path is empty")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// AIConfig implementation
func (c *Config) GetGeminiAPIKey() string   { return c.GeminiAPIKey }
func (c *Config) GetAIModels() []string     { return c.AIModels }
func (c *Config) GetAIDefaultModel() string { return c.AIDefaultModel }
func (c *Config) IsAIProviderEnabled() bool { return c.GeminiAPIKey != "" }

// RateLimitConfig implementation
func (c *Config) GetGenerationRatePerMinute() int { return c.GenerationRatePerMinute }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "5000"))
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT must be an integer between 1 and 65535")
	}

	staticFolder, err := filepath.Abs(getEnv("STATIC_FOLDER", "static"))
	if err != nil {
		return nil, fmt.Errorf("resolve STATIC_FOLDER: %w", err)
	}

	staticURLPath := "/" + strings.Trim(getEnv("STATIC_URL_PATH", "/static"), "/")
	if staticURLPath == "/" {
		return nil, fmt.Errorf("STATIC_URL_PATH cannot be the root path")
	}

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	models := splitCSV(getEnv("AI_MODELS", "gemini-2.5-flash,gemini-2.5-pro"))
	defaultModel := getEnv("AI_DEFAULT_MODEL", "")
	if defaultModel == "" && len(models) > 0 {
		defaultModel = models[0]
	}

	cfg := &Config{
		Env:                     getEnv("APP_ENV", "development"),
		Host:                    getEnv("HOST", "0.0.0.0"),
		Port:                    port,
		Debug:                   strings.EqualFold(getEnv("DEBUG", "false"), "true"),
		StaticFolder:            staticFolder,
		StaticURLPath:           staticURLPath,
		CORSAllowAll:            len(corsOrigins) == 0 || containsWildcard(corsOrigins),
		CORSOrigins:             corsOrigins,
		GeminiAPIKey:            getEnv("GEMINI_API_KEY", ""),
		AIModels:                models,
		AIDefaultModel:          defaultModel,
		GenerationRatePerMinute: mustInt(getEnv("GENERATION_RATE_PER_MINUTE", "30")),
	}

	if cfg.GenerationRatePerMinute <= 0 {
		return nil, fmt.Errorf("GENERATION_RATE_PER_MINUTE must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
