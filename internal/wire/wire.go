package wire

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api"
	"github.com/patrickvicente/ai-content-strategist/internal/api/config"
	"github.com/patrickvicente/ai-content-strategist/internal/api/handler"
	"github.com/patrickvicente/ai-content-strategist/internal/job"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/cron"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/llm"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, gateway llm.Gateway, cfg *config.Config) (*ApplicationContainer, error) {
	platformRepo := repository.NewPlatformRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	pillarRepo := repository.NewPillarRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	contentRepo := repository.NewContentRepository(db)
	subtaskRepo := repository.NewSubtaskRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	platformService := service.NewPlatformService(platformRepo)
	profileService := service.NewProfileService(profileRepo)
	pillarService := service.NewPillarService(pillarRepo)
	ideaService := service.NewIdeaService(ideaRepo)
	contentService := service.NewContentService(contentRepo, platformRepo)
	subtaskService := service.NewSubtaskService(subtaskRepo, contentRepo)
	taskService := service.NewTaskService(taskRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, contentRepo, platformRepo)
	dashboardService := service.NewDashboardService(
		platformRepo, pillarRepo, ideaRepo, contentRepo, taskRepo, analyticsRepo,
		cfg.Dashboard.RecentLimit, cfg.Dashboard.AnalyticsDays,
	)
	aiService := service.NewAIService(
		gateway, profileRepo, platformRepo, pillarRepo, contentRepo, analyticsRepo, ideaService,
	)

	handlers := &api.HandlersGroup{
		PlatformHandler:  handler.NewPlatformHandler(platformService),
		ProfileHandler:   handler.NewProfileHandler(profileService),
		PillarHandler:    handler.NewPillarHandler(pillarService),
		IdeaHandler:      handler.NewIdeaHandler(ideaService),
		ContentHandler:   handler.NewContentHandler(contentService),
		SubtaskHandler:   handler.NewSubtaskHandler(subtaskService),
		TaskHandler:      handler.NewTaskHandler(taskService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		DashboardHandler: handler.NewDashboardHandler(dashboardService),
		AIHandler:        handler.NewAIHandler(aiService),
	}

	router := api.SetupRouter(handlers)

	snapshotJob := job.NewAnalyticsSnapshotJob(analyticsService)
	cronMgr := cron.NewCronManager(snapshotJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
