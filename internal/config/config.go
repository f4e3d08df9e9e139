package config

import (
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DatabaseURL       string
	JWTSecret         []byte
	Port              string
	AllowedOrigins    []string
	RedisAddress      string
	RedisPassword     string
	AdminUsername     string
	AdminPasswordHash []byte
	// AllowRetransition permits status changes out of accepted/declined.
	// Off by default: terminal states stay terminal.
	AllowRetransition bool
}

func Load() *Config {
	dbURL := os.Getenv("DB_CONNECTION_STRING")
	if dbURL == "" {
		panic("DB_CONNECTION_STRING environment variable is required")
	}

	// No hardcoded fallback: a deployment without a configured secret must
	// not start.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET environment variable is required")
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUser == "" || adminPassword == "" {
		panic("ADMIN_USERNAME and ADMIN_PASSWORD environment variables are required")
	}

	// The plaintext admin password is hashed once at startup so login can
	// go through the same constant-time bcrypt comparison as user logins.
	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		panic("Failed to hash admin password: " + err.Error())
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	return &Config{
		DatabaseURL:       dbURL,
		JWTSecret:         []byte(secret),
		Port:              port,
		AllowedOrigins:    splitOrigins(origins),
		RedisAddress:      envOrDefault("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		AdminUsername:     adminUser,
		AdminPasswordHash: adminHash,
		AllowRetransition: os.Getenv("RESERVATION_RETRANSITION") == "true",
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
