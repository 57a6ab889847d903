package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string

	// MongoDB
	MongoURI      string
	MongoDatabase string

	// Web assets
	StaticDir    string
	TemplateGlob string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "postflow"),

		StaticDir:    getEnv("STATIC_DIR", "web/static"),
		TemplateGlob: getEnv("TEMPLATE_GLOB", "web/templates/*.html"),
	}

	if config.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI must be set in environment variables")
	}

	// This deployment must point at a managed remote database; a loopback
	// address is a misconfiguration, not a dev convenience.
	if isLoopbackURI(config.MongoURI) {
		return nil, fmt.Errorf("MONGODB_URI points at a local database, a remote connection string is required")
	}

	return config, nil
}

func isLoopbackURI(uri string) bool {
	uri = strings.ToLower(uri)
	for _, host := range []string{"localhost", "127.0.0.1", "::1"} {
		if strings.Contains(uri, host) {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
