package config

import (
	"fmt"
	"os"
	"time"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Store       string
	MongoDBURI  string
	MongoDBName string
	JWTSecret   string
	JWTTTL      time.Duration
	JWTIssuer   string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		Store:       getEnvWithDefault("STORE", StoreMongo),
		MongoDBURI:  os.Getenv("MONGODB_URI"),
		MongoDBName: getEnvWithDefault("MONGODB_NAME", "gatherly"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnvWithDefault("JWT_ISSUER", "gatherly-api"),
	}

	ttl, err := time.ParseDuration(getEnvWithDefault("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %v", err)
	}
	cfg.JWTTTL = ttl

	// Validate required fields
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Store != StoreMongo && cfg.Store != StoreMemory {
		return nil, fmt.Errorf("STORE must be %q or %q", StoreMongo, StoreMemory)
	}
	if cfg.Store == StoreMongo && cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
