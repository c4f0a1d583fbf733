package repository

import (
	"testing"

	"github.com/patrickvicente/ai-content-strategist/internal/model"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPlatform(t *testing.T, db *gorm.DB, name string) *model.Platform {
	t.Helper()
	platform := &model.Platform{PlatformName: name}
	if err := db.Create(platform).Error; err != nil {
		t.Fatalf("seed platform %s: %v", name, err)
	}
	return platform
}
