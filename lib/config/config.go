package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Shared secret expected in the x-api-key header. Empty means the
	// function is misconfigured and every request is rejected.
	ApiKey string

	AdsTableName  string
	AdsBucketName string

	// Validity window for signed image read URLs.
	SignedURLTTL time.Duration

	LogLevel string
}

func Load() *Config {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	return &Config{
		ApiKey:        os.Getenv("API_KEY"),
		AdsTableName:  getEnv("ADS_TABLE_NAME", "AdsTable"),
		AdsBucketName: getEnv("ADS_BUCKET_NAME", "ads-images"),
		SignedURLTTL:  time.Duration(getEnvInt("SIGNED_URL_TTL_SECONDS", 3600)) * time.Second,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
