package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables

	JWTSecret        string
	TokenExpiryHours int

	// AuthDevFallback substitutes a fixed placeholder identity when bearer
	// resolution fails. Only honored outside production.
	AuthDevFallback bool
	// TrustProxyAuth accepts identity claims forwarded by a fronting gateway
	// that has already verified the caller's token.
	TrustProxyAuth bool

	RateLimitRPS   float64
	RateLimitBurst int

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users string
	Tasks string
}

// devJWTSecret is the fixed fallback signing secret. Load tolerates it only
// outside production; Validate rejects it there.
const devJWTSecret = "default-jwt-secret-for-development-only"

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Users: getEnv("DYNAMO_TABLE_USERS", "users"),
			Tasks: getEnv("DYNAMO_TABLE_TASKS", "tasks"),
		},

		JWTSecret:        getEnv("JWT_SECRET", devJWTSecret),
		TokenExpiryHours: getEnvInt("TOKEN_EXPIRY_HOURS", 24),

		AuthDevFallback: getEnvBool("AUTH_DEV_FALLBACK", false),
		TrustProxyAuth:  getEnvBool("TRUST_PROXY_AUTH", false),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// IsProduction reports whether the service runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate checks invariants that must hold before serving traffic.
// In production a real signing secret and explicit table names are required.
func (c *Config) Validate() error {
	if c.DynamoTables.Users == "" {
		return fmt.Errorf("DYNAMO_TABLE_USERS is not set")
	}
	if c.DynamoTables.Tasks == "" {
		return fmt.Errorf("DYNAMO_TABLE_TASKS is not set")
	}
	if c.IsProduction() {
		if c.JWTSecret == "" || c.JWTSecret == devJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.AuthDevFallback {
			return fmt.Errorf("AUTH_DEV_FALLBACK cannot be enabled in production")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
