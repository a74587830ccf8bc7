package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	BaseURL       string
	DatabaseDSN   string
	AccessSecret  string
	UploadDir     string
	FileStorage   string // "local" (default) or "cloudinary"
	CloudinaryUrl string
	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		BaseURL:       os.Getenv("BASE_URL"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		AccessSecret:  os.Getenv("ACCESS_SECRET"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
		FileStorage:   os.Getenv("FILE_STORAGE"),
		CloudinaryUrl: os.Getenv("CLOUDINARY_URL"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":8080"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "*"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.FileStorage == "" {
		cfg.FileStorage = "local"
	}

	return cfg
}
