package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	Env                   string
	DBPath                string
	CORSOrigins           string
	JWTSecret             string
	JWTIssuer             string
	JWTAudience           string
	RedisURL              string
	ViewWindow            time.Duration
	NotificationRetention time.Duration
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:                  GetEnv("PORT", "3000"),
		Env:                   GetEnv("ENV", "development"),
		DBPath:                GetEnv("DB_PATH", "./data/kartvizid.db"),
		CORSOrigins:           GetEnv("CORS_ORIGINS", "*"),
		JWTSecret:             GetEnv("AUTH_JWT_SECRET", ""),
		JWTIssuer:             GetEnv("AUTH_JWT_ISSUER", ""),
		JWTAudience:           GetEnv("AUTH_JWT_AUDIENCE", ""),
		RedisURL:              GetEnv("REDIS_URL", ""),
		ViewWindow:            GetDuration("VIEW_WINDOW", 30*time.Minute),
		NotificationRetention: GetDuration("NOTIFICATION_RETENTION", 90*24*time.Hour),
	}

	if AppConfig.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDuration parses a Go duration ("30m") or a plain number of seconds
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("[CONFIG] invalid duration for %s: %q, using %v", key, value, defaultValue)
	return defaultValue
}
