package config

import (
	"os"
	"strconv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	ServerPort       string
	MySQLDSN         string
	JWTSecret        string
	JWTAlgorithm     string
	JWTExpireMinutes int
	UploadDir        string
}

// Load builds Config from environment with fallback defaults.
func Load() *Config {
	return &Config{
		ServerPort:       GetEnv("SERVER_PORT", "8001"),
		MySQLDSN:         GetEnv("MYSQL_DSN", "root:@tcp(127.0.0.1:3306)/hrms_db?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:        GetEnv("JWT_SECRET_KEY", "your-secret-key-here"),
		JWTAlgorithm:     GetEnv("JWT_ALGORITHM", "HS256"),
		JWTExpireMinutes: GetEnvAsInt("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		UploadDir:        GetEnv("UPLOAD_DIR", "./uploads"),
	}
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
