package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SecretKey     string
	TokenLifetime time.Duration
	UploadDir     string
	GinMode       string
}

func Load() *Config {
	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "mysql"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "market"),
		DBPassword:    getEnv("DB_PASSWORD", "market"),
		DBName:        getEnv("DB_NAME", "secondhand_market"),
		SecretKey:     getEnv("SECRET_KEY", "default-secret-key-change-me"),
		TokenLifetime: time.Duration(getEnvInt("TOKEN_LIFETIME_HOURS", 72)) * time.Hour,
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
