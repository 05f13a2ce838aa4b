// Package config provides configuration for the census chat server.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Warehouse connection
	WarehouseDriver   string
	WarehouseDSN      string
	WarehouseDatabase string
	WarehouseSchema   string

	// Model settings
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Orchestration bounds
	MaxRounds int
	RowCap    int
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnvInt("HTTP_PORT", 8080),
		WarehouseDriver:   getEnv("WAREHOUSE_DRIVER", "sqlite3"),
		WarehouseDSN:      getEnv("WAREHOUSE_DSN", "file:census.db?mode=ro&cache=shared"),
		WarehouseDatabase: getEnv("WAREHOUSE_DATABASE", "CENSUS"),
		WarehouseSchema:   getEnv("WAREHOUSE_SCHEMA", "PUBLIC"),
		LLMBaseURL:        getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		LLMAPIKey:         getEnv("OPENAI_API_KEY", ""),
		LLMModel:          getEnv("OPENAI_MODEL", "gpt-4o"),
		LLMTimeout:        time.Duration(getEnvInt("LLM_TIMEOUT_MS", 120000)) * time.Millisecond,
		MaxRounds:         getEnvInt("MAX_ROUNDS", 5),
		RowCap:            getEnvInt("ROW_CAP", 500),
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
