package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/anuntech/expense-backend/internal/logger"
)

const (
	BackendMongo  = "mongodb"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var validBackends = []string{BackendMongo, BackendSQLite, BackendMemory}

type Config struct {
	// HTTP Server
	Port           string
	AllowedOrigins []string

	// Store
	StoreBackend  string
	MongoURI      string
	MongoDatabase string
	SQLiteDBPath  string

	// Report archive, disabled when RedisURL is empty
	RedisURL         string
	ReportArchiveTTL time.Duration

	ReportPageSize string
	Timezone       string

	LogLevel  string
	LogFormat string
}

// LoadEnvFile loads path into the environment when it exists. Variables already set win.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		logger.L().WithError(err).Warnf("could not load %s", path)
	}
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),

		StoreBackend:  strings.ToLower(getEnv("STORE_BACKEND", BackendMongo)),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "expense_tracker"),
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/expenses.db"),

		RedisURL:         getEnv("REDIS_URL", ""),
		ReportArchiveTTL: getEnvDuration("REPORT_ARCHIVE_TTL", 24*time.Hour),

		ReportPageSize: getEnv("REPORT_PAGE_SIZE", "A4"),
		Timezone:       getEnv("TIMEZONE", "Local"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	isValidBackend := false
	for _, backend := range validBackends {
		if c.StoreBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid store backend '%s': must be one of %v", c.StoreBackend, validBackends))
	}

	switch c.StoreBackend {
	case BackendMongo:
		if c.MongoURI == "" {
			errors = append(errors, "MONGO_URI is required when using the mongodb backend")
		}
		if c.MongoDatabase == "" {
			errors = append(errors, "MONGO_DATABASE cannot be empty when using the mongodb backend")
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using the sqlite backend")
		}
	}

	if c.RedisURL != "" {
		if parsedURL, err := url.Parse(c.RedisURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid Redis URL '%s': %v", c.RedisURL, err))
		} else if parsedURL.Scheme != "redis" && parsedURL.Scheme != "rediss" {
			errors = append(errors, fmt.Sprintf("invalid Redis URL scheme '%s': must be 'redis' or 'rediss'", parsedURL.Scheme))
		}
		if c.ReportArchiveTTL < time.Minute {
			errors = append(errors, fmt.Sprintf("invalid report archive TTL %v: must be at least 1 minute", c.ReportArchiveTTL))
		}
	}

	if !strings.EqualFold(c.ReportPageSize, "A4") && !strings.EqualFold(c.ReportPageSize, "Letter") {
		errors = append(errors, fmt.Sprintf("invalid report page size '%s': must be A4 or Letter", c.ReportPageSize))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errors = append(errors, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if format := strings.ToLower(c.LogFormat); format != "text" && format != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Location is the zone windows are resolved in. Call after Validate.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
