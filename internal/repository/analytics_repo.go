package repository

import (
	"context"
	"time"

	"github.com/patrickvicente/ai-content-strategist/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsRepo interface {
	CreateRecord(ctx context.Context, record *model.AnalyticsRecord) error
	SaveOrUpdateRecord(ctx context.Context, record *model.AnalyticsRecord) error
	ListRecordsSince(ctx context.Context, since time.Time) ([]*model.AnalyticsRecord, error)
	ListRecordsByPlatform(ctx context.Context, platformID uint64) ([]*model.AnalyticsRecord, error)
}

type analyticsRepoImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepo {
	return &analyticsRepoImpl{db: db}
}

func (s *analyticsRepoImpl) CreateRecord(ctx context.Context, record *model.AnalyticsRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

// SaveOrUpdateRecord 同一内容+平台+日期只保留一条，重复写入覆盖计数
func (s *analyticsRepoImpl) SaveOrUpdateRecord(ctx context.Context, record *model.AnalyticsRecord) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "content_id"}, {Name: "platform_id"}, {Name: "date_recorded"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"views", "likes", "shares", "comments", "saves", "retention_rate", "engagement_rate",
		}),
	}).Create(record).Error
}

func (s *analyticsRepoImpl) ListRecordsSince(ctx context.Context, since time.Time) ([]*model.AnalyticsRecord, error) {
	records := make([]*model.AnalyticsRecord, 0)
	err := s.db.WithContext(ctx).
		Where("date_recorded >= ?", since).
		Order("date_recorded DESC").Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *analyticsRepoImpl) ListRecordsByPlatform(ctx context.Context, platformID uint64) ([]*model.AnalyticsRecord, error) {
	records := make([]*model.AnalyticsRecord, 0)
	err := s.db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("date_recorded DESC").Order("id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
