package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every externally supplied setting. It is populated once by
// Load at process start and never mutated afterwards.
type Config struct {
	Port          string
	MongoURI      string
	DatabaseName  string
	SecretKey     string
	UploadDir     string
	MaxUploadSize int64 // bytes
}

var App Config

// Load reads the .env file (if present) and environment variables into App.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	App = Config{
		Port:          getEnv("PORT", "8000"),
		MongoURI:      os.Getenv("DB"),
		DatabaseName:  getEnv("DB_NAME", "foodorder"),
		SecretKey:     os.Getenv("SECRET_KEY"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSize: getEnvInt64("MAX_UPLOAD_SIZE", 8<<20),
	}

	if App.MongoURI == "" {
		log.Fatal("DB is not set in the environment variables")
	}
	if App.SecretKey == "" {
		log.Fatal("SECRET_KEY is not set in the environment variables")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
