package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	CORSOrigins []string
	LLMAPIKey   string
	LLMBaseURL  string
}

func LoadConfig() Config {
	// .env is optional; system environment wins either way
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8000"),
		DBUser:      getEnv("DB_USER", ""),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBHost:      getEnv("DB_HOST", ""),
		DBPort:      getEnv("DB_PORT", ""),
		DBName:      getEnv("DB_NAME", ""),
		CORSOrigins: splitOrigins(getEnv("CORS_ORIGINS", "*")),
		LLMAPIKey:   getEnv("LLM_API_KEY", ""),
		LLMBaseURL:  getEnv("LLM_BASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
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
