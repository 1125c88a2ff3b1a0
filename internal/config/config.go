package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	CatalogPath   string
	OrdersCSVPath string
	APIPort       string
	TopK          int
	LogLevel      slog.Level
	LogFormat     string
}

// Load reads configuration from environment variables and returns a Config
// struct. It applies defaults for optional fields and validates required
// fields. If a .env file exists in the current directory or project root,
// it will be loaded automatically. Environment variables already set take
// precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up from the working directory to find a project-level .env
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		CatalogPath:   getEnv("CATALOG_PATH", ""),
		OrdersCSVPath: getEnv("ORDERS_CSV_PATH", "./data/orders.csv"),
		APIPort:       getEnv("API_PORT", "9000"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	if cfg.CatalogPath == "" {
		return nil, fmt.Errorf("CATALOG_PATH is required")
	}

	topKStr := getEnv("TOP_K", "5")
	topK, err := strconv.Atoi(topKStr)
	if err != nil {
		return nil, fmt.Errorf("TOP_K must be a valid integer: %w", err)
	}
	if topK <= 0 {
		return nil, fmt.Errorf("TOP_K must be greater than 0")
	}
	cfg.TopK = topK

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// Create the orders directory up front so the first append does not
	// fail on a missing path.
	ordersDir := filepath.Dir(cfg.OrdersCSVPath)
	if err := os.MkdirAll(ordersDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create orders directory: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
