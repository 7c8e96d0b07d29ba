package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// InitDatabase opens a PostgreSQL or SQLite connection, retrying with
// exponential backoff, and configures the connection pool
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	driver, ok := cfg.Kind()
	if !ok {
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 5
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = time.Second
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		if driver == DriverPostgres {
			log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
			db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		} else {
			log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
			db, err = gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{})
		}

		if err == nil {
			err = pingDatabase(db)
			if err == nil {
				log.WithFields(logrus.Fields{
					"db_driver": driver,
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		if attempt < maxRetries {
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
			delay *= 2
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

func pingDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get database instance")
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return err
	}
	configureConnectionPool(sqlDB)
	return nil
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}

// Migrate creates or updates the menu and OAuth tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.PizzaRecord{},
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
