package job

import (
	"context"
	log "log/slog"

	"github.com/patrickvicente/ai-content-strategist/internal/pkg/logger"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/google/uuid"
)

// AnalyticsSnapshotJob 每日把已发布内容的计数落成表现快照
type AnalyticsSnapshotJob struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsSnapshotJob(analyticsSvc service.AnalyticsService) *AnalyticsSnapshotJob {
	return &AnalyticsSnapshotJob{
		analyticsSvc: analyticsSvc,
	}
}

func (s *AnalyticsSnapshotJob) Run() {
	traceID := "job-snapshot-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	log.InfoContext(ctx, "start analytics snapshot job")
	if err := s.analyticsSvc.SnapshotDaily(ctx); err != nil {
		log.ErrorContext(ctx, "analytics snapshot job failed", "err", err)
		return
	}
	log.InfoContext(ctx, "analytics snapshot job finished")
}
