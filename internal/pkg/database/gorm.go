package database

import (
	"fmt"
	log "log/slog"
	"time"

	"github.com/patrickvicente/ai-content-strategist/internal/api/config"
	"github.com/patrickvicente/ai-content-strategist/internal/model"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB 初始化并返回 *gorm.DB 实例，处理连接池配置
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	dialector = mysql.Open(cfg.DSN)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.NewGormLogger(),
		PrepareStmt:                              true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	if err = Migrate(db); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

// Migrate 建表，弱引用不建外键约束
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Platform{},
		&model.Profile{},
		&model.ContentPillar{},
		&model.ContentIdea{},
		&model.ContentItem{},
		&model.ContentPlatform{},
		&model.ContentSubtask{},
		&model.Task{},
		&model.AnalyticsRecord{},
	)
}
