package config

import (
	"os"
)

type StorageConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	DatabaseURL   string
	Port          string
	LogLevel      string
	GuestBaseURL  string // prefix for guest links embedded in QR codes
	Storage       StorageConfig
	Email         EmailConfig
	AllowedOrigin string
}

func LoadConfig() *Config {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          os.Getenv("PORT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		GuestBaseURL:  os.Getenv("GUEST_BASE_URL"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
	}

	cfg.Storage.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.Storage.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.Storage.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.Storage.Bucket = os.Getenv("R2_BUCKET")
	cfg.Storage.PublicURL = os.Getenv("R2_PUBLIC_URL")

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.GuestBaseURL == "" {
		cfg.GuestBaseURL = "http://localhost:5173/e/"
	}

	return cfg
}
