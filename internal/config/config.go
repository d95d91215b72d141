package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-based settings
type Config struct {
	Environment    string
	ServerAddress  string
	DatabaseURL    string
	MigrationsPath string
	JWTSecret      string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string

	// prayer timings upstream
	TimingsCountry string
	TimingsMethod  int

	// Google Fit OAuth
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	UseSpaces       bool
	SpacesEndpoint  string
	SpacesRegion    string
	SpacesBucket    string
	SpacesCDNURL    string
	SpacesAccessKey string
	SpacesSecretKey string
}

// Load reads configuration from a .env file (if present) and the process
// environment.
func Load() (*Config, error) {
	// a missing .env is fine in production
	_ = godotenv.Load()

	cfg := &Config{
		Environment:    os.Getenv("APP_ENV"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		JWTSecret:      os.Getenv("JWT_SECRET"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),

		TimingsCountry: os.Getenv("TIMINGS_COUNTRY"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		UseSpaces:       os.Getenv("USE_SPACES") == "true",
		SpacesEndpoint:  os.Getenv("SPACES_ENDPOINT"),
		SpacesRegion:    os.Getenv("SPACES_REGION"),
		SpacesBucket:    os.Getenv("SPACES_BUCKET"),
		SpacesCDNURL:    os.Getenv("SPACES_CDN_URL"),
		SpacesAccessKey: os.Getenv("SPACES_ACCESS_KEY"),
		SpacesSecretKey: os.Getenv("SPACES_SECRET_KEY"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = ":8080"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "./migrations"
	}
	if cfg.TimingsCountry == "" {
		cfg.TimingsCountry = "Turkey"
	}

	cfg.TimingsMethod = 13
	if raw := os.Getenv("TIMINGS_METHOD"); raw != "" {
		method, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("TIMINGS_METHOD must be an integer: %v", err)
		}
		cfg.TimingsMethod = method
	}

	return cfg, nil
}
