package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"clinic-faq/internal/match"
	"clinic-faq/internal/storage"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort     string
	DBDriver    string
	DatabaseURL string

	LogLevel  slog.Level
	LogFormat string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPoolSize int // 0 keeps the client default
	RedisPrefix   string
	CacheEnabled  bool
	CacheTTL      time.Duration

	// ScoringWorkers > 0 scores entries on a worker pool of that size.
	ScoringWorkers int

	Match match.Config
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		APIPort:       getEnv("API_PORT", "4000"),
		DBDriver:      getEnv("DB_DRIVER", storage.DriverSQLite),
		DatabaseURL:   getEnv("DATABASE_URL", "./data/clinic-faq.db"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisPrefix:   getEnv("REDIS_PREFIX", ""),
	}

	var err error
	if cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	switch cfg.DBDriver {
	case storage.DriverSQLite, storage.DriverPostgres:
	default:
		return nil, fmt.Errorf("DB_DRIVER must be %s or %s, got %q", storage.DriverSQLite, storage.DriverPostgres, cfg.DBDriver)
	}

	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize < 0 {
		return nil, fmt.Errorf("REDIS_POOL_SIZE must not be negative")
	}
	if cfg.CacheEnabled, err = getEnvBool("CACHE_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getEnvDuration("CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be greater than 0")
	}
	if cfg.ScoringWorkers, err = getEnvInt("SCORING_WORKERS", 0); err != nil {
		return nil, err
	}
	if cfg.ScoringWorkers < 0 {
		return nil, fmt.Errorf("SCORING_WORKERS must not be negative")
	}

	if cfg.Match, err = loadMatchConfig(); err != nil {
		return nil, err
	}

	// Create the data directory for the SQLite file if it doesn't exist
	if cfg.DBDriver == storage.DriverSQLite {
		dataDir := filepath.Dir(cfg.DatabaseURL)
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// CacheConfigured reports whether an ask cache should be created.
func (c *Config) CacheConfigured() bool {
	return c.RedisAddr != "" || c.CacheEnabled
}

func loadMatchConfig() (match.Config, error) {
	cfg := match.DefaultConfig()

	floats := []struct {
		key string
		dst *float64
	}{
		{"MATCH_QUESTION_WEIGHT", &cfg.QuestionWeight},
		{"MATCH_ANSWER_WEIGHT", &cfg.AnswerWeight},
		{"MATCH_TAG_WEIGHT", &cfg.TagWeight},
		{"MATCH_CONFIDENCE_THRESHOLD", &cfg.ConfidenceThreshold},
		{"MATCH_AMBIGUITY_RATIO", &cfg.AmbiguityRatio},
	}
	for _, f := range floats {
		v, err := getEnvFloat(f.key, *f.dst)
		if err != nil {
			return match.Config{}, err
		}
		*f.dst = v
	}

	maxResults, err := getEnvInt("MATCH_MAX_RESULTS", cfg.MaxResults)
	if err != nil {
		return match.Config{}, err
	}
	cfg.MaxResults = maxResults

	if err := cfg.Validate(); err != nil {
		return match.Config{}, fmt.Errorf("invalid match configuration: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads .env from the current directory, then from the nearest
// parent (up to five levels) that has one.
func loadDotEnv() {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number: %w", key, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 30s or 5m: %w", key, err)
	}
	return v, nil
}
