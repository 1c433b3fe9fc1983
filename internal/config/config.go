package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	// Secret signs access tokens. Required.
	Secret string
	// BearerExpiresIn is the access token lifetime, e.g. "1m", "24h". Required.
	BearerExpiresIn time.Duration
}

// Load reads configuration from the environment. Missing required settings
// abort startup instead of surfacing later as broken tokens or connections.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	secret, err := mustEnv("API_SECRET")
	if err != nil {
		return nil, err
	}
	expiresInStr, err := mustEnv("BEARER_EXPIRES_IN")
	if err != nil {
		return nil, err
	}
	expiresIn, err := time.ParseDuration(expiresInStr)
	if err != nil {
		return nil, fmt.Errorf("BEARER_EXPIRES_IN is not a valid duration: %w", err)
	}
	dbConnection, err := mustEnv("DB_CONNECTION_STRING")
	if err != nil {
		return nil, err
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: dbConnection,
		},
		Auth: AuthConfig{
			Secret:          secret,
			BearerExpiresIn: expiresIn,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}
