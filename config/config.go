package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv nạp file .env nếu có, thiếu file thì dùng biến môi trường sẵn có
func LoadEnv() error {
	return godotenv.Load()
}

// GetEnv đọc biến môi trường
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault đọc biến môi trường với giá trị mặc định
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
