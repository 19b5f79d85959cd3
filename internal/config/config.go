package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	defaultSessionTTL      = 14 * 24 * time.Hour
	defaultUpstreamTimeout = 10 * time.Second
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServiceName string
	LoggerLevel string
	ServerPort  string

	DBDriver    string
	DatabaseDSN string
	ResetDB     bool

	RedisAddr string
	RedisDB   int
	RedisPass string

	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool

	DealerServiceURL    string
	SentimentServiceURL string
	UpstreamTimeout     time.Duration

	SwaggerHost string

	// Warnings lists settings that were rejected and replaced by their default.
	Warnings []string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{
		ServiceName: cast.ToString(getEnv("SERVICE_NAME", "dealerreview")),
		LoggerLevel: cast.ToString(getEnv("LOGGER_LEVEL", "info")),
		ServerPort:  cast.ToString(getEnv("SERVER_PORT", "8000")),

		DBDriver:    cast.ToString(getEnv("DB_DRIVER", "mysql")),
		DatabaseDSN: cast.ToString(getEnv("DATABASE_DSN", "user:password@tcp(localhost:3306)/dealerships?charset=utf8mb4&parseTime=True&loc=Local")),
		ResetDB:     cast.ToBool(getEnv("RESET_DB", false)),

		RedisAddr: cast.ToString(getEnv("REDIS_ADDR", "localhost:6379")),
		RedisDB:   cast.ToInt(getEnv("REDIS_DB", 0)),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		SessionSecret: cast.ToString(getEnv("SESSION_SECRET", "change-me")),
		SecureCookies: cast.ToBool(getEnv("SECURE_COOKIES", false)),

		DealerServiceURL:    cast.ToString(getEnv("BACKEND_URL", "http://localhost:3030")),
		SentimentServiceURL: cast.ToString(getEnv("SENTIMENT_ANALYZER_URL", "http://localhost:5002")),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
	cfg.SessionTTL = cfg.durationEnv("SESSION_TTL", defaultSessionTTL)
	cfg.UpstreamTimeout = cfg.durationEnv("UPSTREAM_TIMEOUT", defaultUpstreamTimeout)
	return cfg
}

// durationEnv reads a positive duration, falling back to def and recording a
// warning when the value does not parse or is not positive.
func (c *Config) durationEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := cast.ToDurationE(raw)
	if err != nil || d <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("invalid %s %q, using %s", key, raw, def))
		return def
	}
	return d
}

func getEnv(key string, def interface{}) interface{} {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
