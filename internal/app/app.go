package app

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/config"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/database"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/menu"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/services"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupDatabase connects, migrates and, when enabled, seeds the menu
func SetupDatabase(conf *config.Config) (*gorm.DB, error) {
	db, err := database.InitDatabase(conf.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	if conf.SeedMenu {
		if err := SeedMenu(db, conf.MenuFile); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// SeedMenu stores the menu from menuFile, or the house menu when menuFile
// is empty, unless pizzas are already stored
func SeedMenu(db *gorm.DB, menuFile string) error {
	m := menu.Default()
	if menuFile != "" {
		loaded, err := menu.Load(menuFile)
		if err != nil {
			return fmt.Errorf("load menu %s: %w", menuFile, err)
		}
		m = loaded
	}

	seeded, err := services.NewPizzaService(db).SeedPizzas(m.Items)
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	if seeded == 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}
	log.WithField("pizzas", seeded).Info("Database seeded successfully")
	return nil
}

// Run starts the HTTP server and blocks until it stops
func Run(conf *config.Config) error {
	db, err := SetupDatabase(conf)
	if err != nil {
		return err
	}

	router := NewRouter(db, conf.JWTSecret)
	addr := fmt.Sprintf("%v:%d", conf.Host, conf.Port)
	log.Infof("Starting server on %s", addr)
	return router.Run(addr)
}
