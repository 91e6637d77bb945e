package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/database"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// HTTP API configuration
	HTTPPort string

	// Metrics server configuration
	MetricsPort string

	// Redis configuration (empty disables the analysis cache)
	RedisAddr        string
	AnalysisCacheTTL time.Duration

	// NATS configuration (empty disables event publishing)
	NATSServers string

	// Analysis configuration
	AnalysisMinDraws int // minimum complete draws before clustering runs

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// Tests may have set the instance already
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		HTTPPort:    getEnvWithDefault("HTTP_PORT", "8080"),
		MetricsPort: getEnvWithDefault("METRICS_PORT", "9091"),

		RedisAddr:        os.Getenv("REDIS_ADDR"),
		AnalysisCacheTTL: 5 * time.Minute,

		NATSServers: os.Getenv("NATS_SERVERS"),

		AnalysisMinDraws: 10,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	if ttl := os.Getenv("ANALYSIS_CACHE_TTL_SECONDS"); ttl != "" {
		if seconds, err := strconv.Atoi(ttl); err == nil && seconds > 0 {
			config.AnalysisCacheTTL = time.Duration(seconds) * time.Second
		}
	}
	if minDraws := os.Getenv("ANALYSIS_MIN_DRAWS"); minDraws != "" {
		if parsed, err := strconv.Atoi(minDraws); err == nil && parsed > 0 {
			config.AnalysisMinDraws = parsed
		}
	}

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:      "test",
		HTTPPort:         "8080",
		MetricsPort:      "9091",
		AnalysisMinDraws: 10,
		AnalysisCacheTTL: 5 * time.Minute,
	}
}
