package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	LogLevel     string
	TemplatesDir string
	PageSize     int
	// SessionTTL is how long an idle checkout session keeps its order.
	SessionTTL time.Duration

	// Owner is the single account managed from the settings page.
	OwnerEmail    string
	OwnerName     string
	OwnerPassword string
}

func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DBDSN:         getEnv("DB_DSN", "bizhub.db"), // sqlite file in project root
		LogFile:       getEnv("LOG_FILE", "./bizhub.log"),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		TemplatesDir:  getEnv("TEMPLATES_DIR", "./web/templates"),
		PageSize:      getEnvAsInt("PAGE_SIZE", 5),
		SessionTTL:    time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
		OwnerEmail:    getEnv("OWNER_EMAIL", "owner@bizhub.test"),
		OwnerName:     getEnv("OWNER_NAME", "Owner"),
		OwnerPassword: getEnv("OWNER_PASSWORD", "Passw0rd!"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s LOG_LEVEL=%s TEMPLATES_DIR=%s PAGE_SIZE=%d SESSION_TTL=%s OWNER_EMAIL=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.LogLevel, cfg.TemplatesDir, cfg.PageSize, cfg.SessionTTL, cfg.OwnerEmail)
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("PAGE_SIZE must be between 1 and 100, got %d", c.PageSize)
	}
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("SESSION_TTL_MINUTES must be at least 1, got %s", c.SessionTTL)
	}
	if c.OwnerEmail == "" || c.OwnerPassword == "" {
		return fmt.Errorf("OWNER_EMAIL and OWNER_PASSWORD are required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
