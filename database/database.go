package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/slotswapper/backend/config"
	"github.com/slotswapper/backend/models"
)

// Connect opens the database selected by the configuration.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	// TranslateError surfaces driver-specific constraint violations as
	// gorm.ErrDuplicatedKey on both drivers
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	log.Println("Database connection established")
	return db, nil
}

// Migrate automatically migrates the database schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Event{}, &models.SwapRequest{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	log.Println("Database migration completed")
	return nil
}
