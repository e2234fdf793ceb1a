package config

import (
	"crypto/rsa"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name           string
	Environment    string // development, staging, production
	Port           string
	Version        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URI            string
	Name           string
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// AuthConfig controls the bearer-token collaborator. When disabled the
// API serves already-authenticated traffic (for example behind a
// gateway) and the middleware is not registered.
type AuthConfig struct {
	Enabled       bool
	PublicKeyPath string
	publicKey     *rsa.PublicKey
}

type RateLimitConfig struct {
	Enabled bool
	Limit   int64
	Window  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Inventory Management API"),
			Environment:    getEnv("APP_ENV", "development"),
			Port:           getEnv("APP_PORT", "8000"),
			Version:        getEnv("APP_VERSION", "1.0.0"),
			AllowedOrigins: strings.Split(getEnv("API_ALLOWED_CORS_ORIGINS", "*"), ","),
		},
		Database: DatabaseConfig{
			URI:            getEnv("DATABASE_URI", "mongodb://localhost:27017"),
			Name:           getEnv("DATABASE_NAME", "ims"),
			ConnectTimeout: time.Duration(getEnvInt("DATABASE_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
			MaxRetries:     getEnvInt("DATABASE_MAX_RETRIES", 5),
			RetryDelay:     time.Duration(getEnvInt("DATABASE_RETRY_DELAY_SECONDS", 1)) * time.Second,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			Enabled:       getEnvBool("AUTHENTICATION_ENABLED", false),
			PublicKeyPath: getEnv("AUTHENTICATION_PUBLIC_KEY_PATH", ""),
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvBool("RATE_LIMIT_ENABLED", false),
			Limit:   int64(getEnvInt("RATE_LIMIT_REQUESTS", 100)),
			Window:  time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		},
	}

	if cfg.Auth.Enabled {
		key, err := loadPublicKey(cfg.Auth.PublicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load authentication public key: %w", err)
		}
		cfg.Auth.publicKey = key
	}

	return cfg, nil
}

// PublicKey returns the parsed verification key. Only valid when
// Auth.Enabled is true.
func (a AuthConfig) PublicKey() *rsa.PublicKey {
	return a.publicKey
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	if path == "" {
		return nil, fmt.Errorf("AUTHENTICATION_PUBLIC_KEY_PATH is required when authentication is enabled")
	}
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jwt.ParseRSAPublicKeyFromPEM(pem)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
