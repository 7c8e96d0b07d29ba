package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      DatabaseConfig
		expected string
	}{
		{
			name:     "postgres",
			cfg:      DatabaseConfig{Driver: "postgres", Host: "db", Port: "5432", User: "u", Password: "p", Name: "pizzas", SSLMode: "disable"},
			expected: "host=db user=u password=p dbname=pizzas port=5432 sslmode=disable",
		},
		{
			name:     "sqlite",
			cfg:      DatabaseConfig{Driver: "sqlite", Path: "/tmp/pizzas.sqlite"},
			expected: "/tmp/pizzas.sqlite",
		},
		{
			name:     "default driver is sqlite",
			cfg:      DatabaseConfig{Path: "menu.sqlite"},
			expected: "menu.sqlite",
		},
		{
			name:     "driver name is case-insensitive",
			cfg:      DatabaseConfig{Driver: "PostgreSQL", Host: "db", Port: "5432", User: "u", Password: "p", Name: "pizzas", SSLMode: "require"},
			expected: "host=db user=u password=p dbname=pizzas port=5432 sslmode=require",
		},
		{
			name:     "unknown driver",
			cfg:      DatabaseConfig{Driver: "oracle"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestStringMasksPassword(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
	assert.Contains(t, cfg.String(), "[REDACTED]")

	sqliteCfg := DatabaseConfig{Path: "menu.sqlite", Password: "hunter2"}
	assert.Equal(t, "DatabaseConfig{Driver: sqlite, Path: menu.sqlite}", sqliteCfg.String())
}

func TestInitDatabaseSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.sqlite")

	db, err := InitDatabase(DatabaseConfig{Driver: "SQLite", Path: path})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	record := models.PizzaRecord{Toppings: []models.Topping{models.Ham}}
	require.NoError(t, db.Create(&record).Error)

	var count int64
	require.NoError(t, db.Model(&models.PizzaRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestInitDatabaseUnsupportedDriver(t *testing.T) {
	db, err := InitDatabase(DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestInitDatabaseGivesUp(t *testing.T) {
	// sqlite does not create missing parent directories
	db, err := InitDatabase(DatabaseConfig{
		Driver:     "sqlite",
		Path:       filepath.Join(t.TempDir(), "missing", "menu.sqlite"),
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	})
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "after 2 attempts")
}
