package config

import (
	"os"
)

// Config holds all configuration for the flood reporting service
type Config struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Server configuration
	Port string

	// Upload configuration
	UploadDir        string
	UploadPublicPath string
}

// Load loads configuration from environment variables
func Load() *Config {
	config := &Config{
		// Database defaults
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "server"),
		DBPassword: getEnv("DB_PASSWORD", "secret"),
		DBName:     getEnv("DB_NAME", "floodwatch"),

		// Server defaults
		Port: getEnv("PORT", "8080"),

		// Upload defaults
		UploadDir:        getEnv("UPLOAD_DIR", "public/uploads"),
		UploadPublicPath: getEnv("UPLOAD_PUBLIC_PATH", "/uploads"),
	}

	return config
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
