package database

import (
	"fmt"
	"strings"
	"time"
)

// Supported driver kinds
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver is sqlite (the default) or postgres; "postgresql" is accepted
	Driver string

	// PostgreSQL
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite file holding the menu
	Path string

	// Connection attempts; zero values mean 5 attempts starting at 1s
	MaxRetries int
	RetryDelay time.Duration
}

// Kind normalizes Driver to DriverSQLite or DriverPostgres, or returns
// false for anything else
func (c *DatabaseConfig) Kind() (string, bool) {
	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case "", DriverSQLite:
		return DriverSQLite, true
	case DriverPostgres, "postgresql":
		return DriverPostgres, true
	default:
		return "", false
	}
}

// String returns the settings of the selected driver, password masked
func (c *DatabaseConfig) String() string {
	kind, _ := c.Kind()
	if kind == DriverSQLite {
		return fmt.Sprintf("DatabaseConfig{Driver: %s, Path: %s}", kind, c.Path)
	}
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode)
}

// DSN builds the connection string for the driver, empty when unsupported
func (c *DatabaseConfig) DSN() string {
	kind, ok := c.Kind()
	switch {
	case !ok:
		return ""
	case kind == DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	default:
		return c.Path
	}
}
