package service

import (
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/model"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/consts"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"

	"gorm.io/gorm"
)

// DefaultAnalyticsDays 列表查询缺省回看天数
const DefaultAnalyticsDays = 7

type AnalyticsService interface {
	CreateRecord(ctx context.Context, recordDTO *dto.AnalyticsBaseDTO) (*model.AnalyticsRecord, error)
	ListRecords(ctx context.Context, days int) ([]*model.AnalyticsRecord, error)
	SnapshotDaily(ctx context.Context) error
}

type analyticsServiceImpl struct {
	analyticsRepo repository.AnalyticsRepo
	contentRepo   repository.ContentRepo
	platformRepo  repository.PlatformRepo
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepo, contentRepo repository.ContentRepo, platformRepo repository.PlatformRepo) AnalyticsService {
	return &analyticsServiceImpl{
		analyticsRepo: analyticsRepo,
		contentRepo:   contentRepo,
		platformRepo:  platformRepo,
	}
}

// CreateRecord 手工录入快照。日期缺省取当天，同内容+平台+日期重复录入为覆盖。
// engagement_rate 未提供时按计数推导。
func (s *analyticsServiceImpl) CreateRecord(ctx context.Context, recordDTO *dto.AnalyticsBaseDTO) (*model.AnalyticsRecord, error) {
	contentID := recordDTO.ContentID.Uint64()
	platformID := recordDTO.PlatformID.Uint64()
	if contentID == nil || platformID == nil {
		return nil, ErrParamInvalid
	}

	if _, err := s.contentRepo.GetContent(ctx, *contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		log.ErrorContext(ctx, "查询内容失败", "id", *contentID, "err", err)
		return nil, UnExpectedError
	}
	if _, err := s.platformRepo.GetPlatform(ctx, *platformID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		log.ErrorContext(ctx, "查询平台失败", "id", *platformID, "err", err)
		return nil, UnExpectedError
	}

	dateRecorded := dateOnly(time.Now())
	if parsed, present, err := parseFlexTime(recordDTO.DateRecorded); err != nil {
		return nil, err
	} else if present && parsed != nil {
		dateRecorded = dateOnly(*parsed)
	}

	record := &model.AnalyticsRecord{
		ContentID:    *contentID,
		PlatformID:   *platformID,
		DateRecorded: dateRecorded,
	}
	if v := recordDTO.Views.Value; v != nil {
		record.Views = *v
	}
	if v := recordDTO.Likes.Value; v != nil {
		record.Likes = *v
	}
	if v := recordDTO.Shares.Value; v != nil {
		record.Shares = *v
	}
	if v := recordDTO.Comments.Value; v != nil {
		record.Comments = *v
	}
	if v := recordDTO.Saves.Value; v != nil {
		record.Saves = *v
	}
	if v := recordDTO.RetentionRate.Value; v != nil {
		record.RetentionRate = *v
	}
	if v := recordDTO.EngagementRate.Value; v != nil {
		record.EngagementRate = *v
	} else {
		record.EngagementRate = engagementRate(record.Views, record.Likes, record.Comments, record.Shares)
	}

	if err := s.analyticsRepo.SaveOrUpdateRecord(ctx, record); err != nil {
		log.ErrorContext(ctx, "保存表现快照失败", "content_id", *contentID, "platform_id", *platformID, "err", err)
		return nil, UnExpectedError
	}
	return record, nil
}

func (s *analyticsServiceImpl) ListRecords(ctx context.Context, days int) ([]*model.AnalyticsRecord, error) {
	if days <= 0 {
		days = DefaultAnalyticsDays
	}
	since := dateOnly(time.Now().AddDate(0, 0, -days))
	records, err := s.analyticsRepo.ListRecordsSince(ctx, since)
	if err != nil {
		log.ErrorContext(ctx, "查询表现快照失败", "days", days, "err", err)
		return nil, UnExpectedError
	}
	return records, nil
}

// SnapshotDaily 把已发布内容的当前计数按内容×平台落一条当日快照，
// 当天重复执行为覆盖而不是追加。
func (s *analyticsServiceImpl) SnapshotDaily(ctx context.Context) error {
	items, err := s.contentRepo.ListContentsByStatus(ctx, consts.ContentStatusPublished)
	if err != nil {
		log.ErrorContext(ctx, "查询已发布内容失败", "err", err)
		return UnExpectedError
	}

	today := dateOnly(time.Now())
	var saved int
	for _, item := range items {
		for _, platform := range item.Platforms {
			record := &model.AnalyticsRecord{
				ContentID:      item.ID,
				PlatformID:     platform.ID,
				DateRecorded:   today,
				Views:          item.Views,
				Likes:          item.Likes,
				Shares:         item.Shares,
				Comments:       item.Comments,
				Saves:          item.Saves,
				RetentionRate:  item.RetentionRate,
				EngagementRate: engagementRate(item.Views, item.Likes, item.Comments, item.Shares),
			}
			if err := s.analyticsRepo.SaveOrUpdateRecord(ctx, record); err != nil {
				log.ErrorContext(ctx, "保存每日快照失败", "content_id", item.ID, "platform_id", platform.ID, "err", err)
				return UnExpectedError
			}
			saved++
		}
	}
	log.InfoContext(ctx, "每日表现快照完成", "contents", len(items), "records", saved)
	return nil
}
