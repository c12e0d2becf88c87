package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Shopify
	ShopifyAPIKey      string
	ShopifyAPISecret   string
	ShopifyAccessToken string
	ShopifyStoreDomain string

	// Hugging Face
	HuggingFaceAPIKey string

	// API Configuration
	Port      string
	Host      string
	StaticDir string

	// Environment
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		// API key/secret are app credentials; current calls only use the
		// access token and store domain, but both stay configurable.
		ShopifyAPIKey:      getEnv("SHOPIFY_API_KEY", ""),
		ShopifyAPISecret:   getEnv("SHOPIFY_API_SECRET", ""),
		ShopifyAccessToken: getEnv("SHOPIFY_ACCESS_TOKEN", ""),
		ShopifyStoreDomain: getEnv("SHOPIFY_STORE_DOMAIN", ""),
		HuggingFaceAPIKey:  getEnv("HUGGING_FACE_API_KEY", ""),
		Port:               getEnv("PORT", "3000"),
		Host:               getEnv("HOST", "0.0.0.0"),
		StaticDir:          getEnv("STATIC_DIR", "./public"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
