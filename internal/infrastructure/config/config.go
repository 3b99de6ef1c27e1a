// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion       string
	LogLevel         string
	MetricsNamespace string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI            string
	MongoDB             string
	MongoUser           string
	MongoPassword       string
	MongoConnectTimeout time.Duration

	// PostgreSQL
	PostgresURI string

	// Launch provider
	LaunchProviderURL          string
	LaunchProviderTimeout      time.Duration
	LaunchProviderToken        string
	LaunchProviderClientID     string
	LaunchProviderClientSecret string
	LaunchProviderTokenURL     string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:       getEnv("APP_VERSION", "1.0.0"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "launch_control"),

		Port:         getEnv("PORT", "8000"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "nasa"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		MongoConnectTimeout: time.Duration(getEnvAsInt("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,

		PostgresURI: getEnv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=nasa port=5432 sslmode=disable"),

		LaunchProviderURL:          getEnv("LAUNCH_PROVIDER_URL", "https://api.spacexdata.com"),
		LaunchProviderTimeout:      time.Duration(getEnvAsInt("LAUNCH_PROVIDER_TIMEOUT", 60)) * time.Second,
		LaunchProviderToken:        getEnv("LAUNCH_PROVIDER_TOKEN", ""),
		LaunchProviderClientID:     getEnv("LAUNCH_PROVIDER_CLIENT_ID", ""),
		LaunchProviderClientSecret: getEnv("LAUNCH_PROVIDER_CLIENT_SECRET", ""),
		LaunchProviderTokenURL:     getEnv("LAUNCH_PROVIDER_TOKEN_URL", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
