package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	Database database.DatabaseConfig `json:"database"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret string `json:"jwt_secret"`

	// Menu used to seed an empty database, the house menu when empty
	MenuFile string `json:"menu_file"`
	SeedMenu bool   `json:"seed_menu"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, Database: %s, LogLevel: %s, JWTSecret: [REDACTED], MenuFile: %s, SeedMenu: %t}",
		c.Environment, c.Port, c.Host, c.Database.String(), c.LogLevel, c.MenuFile, c.SeedMenu)
}

// LoadConfig reads the configuration from environment variables and returns a Config struct.
// Returns an error if a variable is malformed.
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	dbConfig := database.DatabaseConfig{Driver: GetEnvWithDefault("DB_DRIVER", database.DriverSQLite)}
	driver, ok := dbConfig.Kind()
	if !ok {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres)", dbConfig.Driver)
	}

	environment := GetEnvWithDefault("APP_ENV", "development")
	jwtSecret := GetEnvWithDefault("JWT_SECRET", "secret")
	if environment == "production" && jwtSecret == "secret" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	config := &Config{
		Environment: environment,
		Port:        port,
		Host:        GetEnvWithDefault("APP_HOST", "localhost"),
		Database: database.DatabaseConfig{
			Driver:   driver,
			Host:     GetEnvWithDefault("DB_HOST", "localhost"),
			Port:     GetEnvWithDefault("DB_PORT", "5432"),
			User:     GetEnvWithDefault("DB_USER", "user"),
			Password: GetEnvWithDefault("DB_PASSWORD", "password"),
			Name:     GetEnvWithDefault("DB_NAME", "pizzas"),
			SSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:     GetEnvWithDefault("DB_PATH", "pizzas.sqlite"),
		},
		LogLevel:  GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret: jwtSecret,
		MenuFile:  GetEnvWithDefault("MENU_FILE", ""),
		SeedMenu:  GetEnvAsType("SEED_MENU", true),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
