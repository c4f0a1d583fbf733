package api

import "github.com/patrickvicente/ai-content-strategist/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PlatformHandler  *handler.PlatformHandler
	ProfileHandler   *handler.ProfileHandler
	PillarHandler    *handler.PillarHandler
	IdeaHandler      *handler.IdeaHandler
	ContentHandler   *handler.ContentHandler
	SubtaskHandler   *handler.SubtaskHandler
	TaskHandler      *handler.TaskHandler
	AnalyticsHandler *handler.AnalyticsHandler
	DashboardHandler *handler.DashboardHandler
	AIHandler        *handler.AIHandler
}
