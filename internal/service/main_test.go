package service

import (
	"testing"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
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

func strp(s string) *string {
	return &s
}

func flexInt(v int64) dto.FlexInt {
	return dto.FlexInt{Value: &v}
}

func flexFloat(v float64) dto.FlexFloat {
	return dto.FlexFloat{Value: &v}
}

func flexIDs(ids ...uint64) *dto.FlexIDs {
	v := dto.FlexIDs(ids)
	return &v
}
