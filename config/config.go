// Package config provides configuration management for the quote service.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// State backends selectable through STATE_BACKEND.
const (
	StateBackendMemory  = "memory"
	StateBackendMongoDB = "mongodb"
	StateBackendRedis   = "redis"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Quote    QuoteConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// QuoteConfig holds the quote engine configuration.
type QuoteConfig struct {
	StateBackend     string
	StateKey         string
	CatalogFile      string
	ClipboardEnabled bool
	TotalsCacheSize  int
	TotalsCacheTTL   time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration, shared by every remote backend
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// RedisConfig holds the Redis state backend connection.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads an optional .env file from the working directory and then
// builds the Config from environment variables. Variables already set in
// the environment win over the file.
func Load() Config {
	LoadDotEnv(".env")
	return FromEnv()
}

// LoadDotEnv loads path into the environment. A missing file is ignored.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to read env file")
	}
}

// FromEnv creates a Config from environment variables.
func FromEnv() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Quote: QuoteConfig{
			StateBackend:     parseStateBackend(os.Getenv("STATE_BACKEND")),
			StateKey:         getEnv("STATE_KEY", "cotizador-state"),
			CatalogFile:      getEnv("CATALOG_FILE", ""),
			ClipboardEnabled: getEnvBool("CLIPBOARD_ENABLED", false),
			TotalsCacheSize:  getEnvInt("TOTALS_CACHE_SIZE", 256),
			TotalsCacheTTL:   getEnvDuration("TOTALS_CACHE_TTL", 5*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "quote_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseStateBackend normalises STATE_BACKEND. Unknown values select memory.
func parseStateBackend(s string) string {
	switch backend := strings.ToLower(strings.TrimSpace(s)); backend {
	case StateBackendMongoDB, StateBackendRedis:
		return backend
	case "", StateBackendMemory:
		return StateBackendMemory
	default:
		log.Warn().Str("backend", s).Msg("Unknown STATE_BACKEND, using memory")
		return StateBackendMemory
	}
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
