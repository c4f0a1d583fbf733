package dto

import "github.com/patrickvicente/ai-content-strategist/internal/model"

// DashboardSummaryDTO 仪表盘汇总，只读
type DashboardSummaryDTO struct {
	TotalPlatforms      int64 `json:"total_platforms"`
	TotalContentPillars int64 `json:"total_content_pillars"`
	TotalContentIdeas   int64 `json:"total_content_ideas"`
	TotalContentItems   int64 `json:"total_content_items"`
	TotalTasks          int64 `json:"total_tasks"`
	PublishedContent    int64 `json:"published_content"`
	PendingTasks        int64 `json:"pending_tasks"`
	TotalViewsWeek      int64 `json:"total_views_week"`
	TotalEngagementWeek int64 `json:"total_engagement_week"`

	RecentContent   []*ContentItemDTO        `json:"recent_content"`
	RecentTasks     []*model.Task            `json:"recent_tasks"`
	RecentAnalytics []*model.AnalyticsRecord `json:"recent_analytics"`
}
