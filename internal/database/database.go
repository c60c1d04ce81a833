package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marksheet/internal/config"
	"marksheet/internal/model"
)

// InitDB opens the configured database and migrates the dataset tables.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.PostgresDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown DB driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err := db.AutoMigrate(&model.Dataset{}, &model.Subject{}, &model.Mark{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate the database: %w", err)
	}
	return db, nil
}
