package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	TokenSecret     string
	TokenIssuer     string
	TokenTTLMinutes int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		TokenSecret:     getEnv("TOKEN_SECRET", "dev-secret-change"),
		TokenIssuer:     getEnv("TOKEN_ISSUER", "accounts-service"),
		TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", 24*60),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
