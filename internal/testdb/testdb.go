// Package testdb opens throwaway in-memory databases for tests.
package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AimbotParce/SharedFlatTracker/internal/models"
)

// Open returns an isolated in-memory database with the full schema
// applied. The random name keeps parallel tests from sharing state; the
// shared cache keeps gorm's pooled connections on the same database.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}
