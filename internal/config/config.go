package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	BaseURL         string
	CredentialsFile string
	CallbackBaseURL string
	StatePath       string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		BaseURL:         getEnv("SENDSEVEN_BASE_URL", "https://api.sendseven.com/api/v1"),
		CredentialsFile: getEnv("SENDSEVEN_CREDENTIALS_FILE", ""),
		CallbackBaseURL: getEnv("CALLBACK_BASE_URL", ""),
		StatePath:       getEnv("STATE_DB_PATH", "./sendseven-state.db"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
