package commands

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AimbotParce/SharedFlatTracker/internal/config"
	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

// openDB connects to the configured store. A postgres:// DSN selects the
// Postgres driver; any other value is treated as an SQLite path, which
// keeps local development dependency-free.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
