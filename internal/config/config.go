package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	// GuestEmail is the customer identity used for orders placed without an
	// account.
	GuestEmail  string
	CORSOrigins []string
}

// Load reads .env if present, then builds the config from the environment.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using system environment")
	}

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=electroparts port=5432 sslmode=disable"),
		GuestEmail:  getEnv("GUEST_EMAIL", "guest@example.com"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
