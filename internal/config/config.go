package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Providers ProviderConfig
	Cache     CacheConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ProviderConfig holds API keys for the external market-data providers.
// Empty keys disable the corresponding feature rather than failing startup;
// the affected endpoints report data as unavailable.
type ProviderConfig struct {
	FMPAPIKey          string
	AlphaVantageAPIKey string
	GeminiAPIKey       string
}

// CacheConfig holds settings for the external-data cache. The TTL is fixed
// per cache instance and applies to every key.
type CacheConfig struct {
	TTL time.Duration
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/stock_dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Providers: ProviderConfig{
			FMPAPIKey:          os.Getenv("FMP_API_KEY"),
			AlphaVantageAPIKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
			GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		},
		Cache: CacheConfig{
			TTL: getEnvDuration("CACHE_TTL", 24*time.Hour),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration parses a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
