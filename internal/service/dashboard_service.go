package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/consts"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"
)

type DashboardService interface {
	Summarize(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

type dashboardServiceImpl struct {
	platformRepo  repository.PlatformRepo
	pillarRepo    repository.PillarRepo
	ideaRepo      repository.IdeaRepo
	contentRepo   repository.ContentRepo
	taskRepo      repository.TaskRepo
	analyticsRepo repository.AnalyticsRepo

	recentLimit   int
	analyticsDays int
}

func NewDashboardService(
	platformRepo repository.PlatformRepo,
	pillarRepo repository.PillarRepo,
	ideaRepo repository.IdeaRepo,
	contentRepo repository.ContentRepo,
	taskRepo repository.TaskRepo,
	analyticsRepo repository.AnalyticsRepo,
	recentLimit int,
	analyticsDays int,
) DashboardService {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	if analyticsDays <= 0 {
		analyticsDays = 7
	}
	return &dashboardServiceImpl{
		platformRepo:  platformRepo,
		pillarRepo:    pillarRepo,
		ideaRepo:      ideaRepo,
		contentRepo:   contentRepo,
		taskRepo:      taskRepo,
		analyticsRepo: analyticsRepo,
		recentLimit:   recentLimit,
		analyticsDays: analyticsDays,
	}
}

// Summarize 仪表盘聚合：各实体计数、近期记录与最近一周的表现合计
func (s *dashboardServiceImpl) Summarize(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	summary := &dto.DashboardSummaryDTO{}

	var err error
	if summary.TotalPlatforms, err = s.platformRepo.CountPlatforms(ctx); err != nil {
		log.ErrorContext(ctx, "统计平台失败", "err", err)
		return nil, UnExpectedError
	}
	if summary.TotalContentPillars, err = s.pillarRepo.CountPillars(ctx); err != nil {
		log.ErrorContext(ctx, "统计内容支柱失败", "err", err)
		return nil, UnExpectedError
	}
	if summary.TotalContentIdeas, err = s.ideaRepo.CountIdeas(ctx); err != nil {
		log.ErrorContext(ctx, "统计内容灵感失败", "err", err)
		return nil, UnExpectedError
	}
	if summary.TotalContentItems, err = s.contentRepo.CountContents(ctx); err != nil {
		log.ErrorContext(ctx, "统计内容失败", "err", err)
		return nil, UnExpectedError
	}
	if summary.TotalTasks, err = s.taskRepo.CountTasks(ctx); err != nil {
		log.ErrorContext(ctx, "统计任务失败", "err", err)
		return nil, UnExpectedError
	}
	if summary.PublishedContent, err = s.contentRepo.CountContentsByStatus(ctx, consts.ContentStatusPublished); err != nil {
		log.ErrorContext(ctx, "统计已发布内容失败", "err", err)
		return nil, UnExpectedError
	}
	if summary.PendingTasks, err = s.taskRepo.CountTasksByStatus(ctx, consts.TaskStatusPending); err != nil {
		log.ErrorContext(ctx, "统计待办任务失败", "err", err)
		return nil, UnExpectedError
	}

	recentContents, err := s.contentRepo.ListRecentContents(ctx, s.recentLimit)
	if err != nil {
		log.ErrorContext(ctx, "查询近期内容失败", "err", err)
		return nil, UnExpectedError
	}
	summary.RecentContent = make([]*dto.ContentItemDTO, 0, len(recentContents))
	for _, item := range recentContents {
		summary.RecentContent = append(summary.RecentContent, toContentItemDTO(item))
	}

	if summary.RecentTasks, err = s.taskRepo.ListRecentTasks(ctx, s.recentLimit); err != nil {
		log.ErrorContext(ctx, "查询近期任务失败", "err", err)
		return nil, UnExpectedError
	}

	since := dateOnly(time.Now().AddDate(0, 0, -s.analyticsDays))
	records, err := s.analyticsRepo.ListRecordsSince(ctx, since)
	if err != nil {
		log.ErrorContext(ctx, "查询近期表现快照失败", "err", err)
		return nil, UnExpectedError
	}
	summary.RecentAnalytics = records
	for _, record := range records {
		summary.TotalViewsWeek += record.Views
		summary.TotalEngagementWeek += record.Likes + record.Comments + record.Shares
	}

	return summary, nil
}
