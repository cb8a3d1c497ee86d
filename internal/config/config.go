package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode    string
	Port       string
	CORSOrigin string
	Database   DatabaseConfig
	JWT        JWTConfig
	Cloudinary CloudinaryConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	RefreshSecret    string
	AccessTokenMins  int
	RefreshTokenDays int
}

// CloudinaryConfig holds object storage configuration.
// The service runs without it; /upload then answers 503.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:    appMode,
		Port:       getEnv("PORT", "8000"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		Database:   loadDatabaseConfig(appMode),
		JWT:        loadJWTConfig(appMode),
		Cloudinary: loadCloudinaryConfig(),
	}

	// No fallback secrets outside dev mode
	if appMode == "prod" && (config.JWT.Secret == "" || config.JWT.RefreshSecret == "") {
		return nil, fmt.Errorf("JWT_SECRET and JWT_REFRESH_SECRET must be set in prod mode")
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// IsDev reports whether the app runs in dev mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "5432"),
		User:     getEnv(prefix+"DB_USER", "postgres"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "campus_lostfound"),
		SSLMode:  getEnv(prefix+"DB_SSLMODE", "disable"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	accessMins := getEnvInt("JWT_ACCESS_MINS", 15)
	refreshDays := getEnvInt("JWT_REFRESH_DAYS", 7)

	secret := getEnv("JWT_SECRET", "")
	refreshSecret := getEnv("JWT_REFRESH_SECRET", "")
	if mode == "dev" {
		if secret == "" {
			secret = "dev-access-secret"
		}
		if refreshSecret == "" {
			refreshSecret = "dev-refresh-secret"
		}
	}

	return JWTConfig{
		Secret:           secret,
		RefreshSecret:    refreshSecret,
		AccessTokenMins:  accessMins,
		RefreshTokenDays: refreshDays,
	}
}

// loadCloudinaryConfig loads object storage config
func loadCloudinaryConfig() CloudinaryConfig {
	return CloudinaryConfig{
		CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		Folder:    getEnv("CLOUDINARY_FOLDER", "lostfound"),
	}
}

// Configured reports whether all required Cloudinary credentials are set
func (c CloudinaryConfig) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
