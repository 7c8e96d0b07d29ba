package main

import (
	"strings"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/app"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// @title Pizza Menu API
// @version 1.0
// @description Describes pizzas built from toppings and cheeses
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Connect, migrate, seed and serve
	checkPanicErr(app.Run(configuration))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// LOG_LEVEL overrides the environment default when it names a valid level.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if raw := config.GetEnvWithDefault("LOG_LEVEL", ""); raw != "" {
		level, err := log.ParseLevel(strings.ToLower(raw))
		if err != nil {
			log.Warnf("Invalid LOG_LEVEL %q, keeping %s", raw, log.GetLevel())
			return
		}
		log.SetLevel(level)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf.String())
	return conf
}
