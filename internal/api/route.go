package api

import (
	"net/http"

	"github.com/patrickvicente/ai-content-strategist/internal/api/middleware"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		platformGroup := apiGroup.Group("/platforms")
		{
			platformGroup.GET("", group.PlatformHandler.ListPlatforms)
			platformGroup.POST("", group.PlatformHandler.CreatePlatform)
			platformGroup.GET("/:id", group.PlatformHandler.GetPlatform)
			platformGroup.PUT("/:id", group.PlatformHandler.UpdatePlatform)
			platformGroup.DELETE("/:id", group.PlatformHandler.DeletePlatform)
		}

		profileGroup := apiGroup.Group("/profile")
		{
			profileGroup.GET("", group.ProfileHandler.GetProfile)
			profileGroup.PUT("", group.ProfileHandler.UpdateProfile)
		}

		pillarGroup := apiGroup.Group("/content-pillars")
		{
			pillarGroup.GET("", group.PillarHandler.ListPillars)
			pillarGroup.POST("", group.PillarHandler.CreatePillar)
			pillarGroup.GET("/:id", group.PillarHandler.GetPillar)
			pillarGroup.PUT("/:id", group.PillarHandler.UpdatePillar)
			pillarGroup.DELETE("/:id", group.PillarHandler.DeletePillar)
		}

		ideaGroup := apiGroup.Group("/content-ideas")
		{
			ideaGroup.GET("", group.IdeaHandler.ListIdeas)
			ideaGroup.POST("", group.IdeaHandler.CreateIdea)
			ideaGroup.GET("/:id", group.IdeaHandler.GetIdea)
			ideaGroup.PUT("/:id", group.IdeaHandler.UpdateIdea)
			ideaGroup.DELETE("/:id", group.IdeaHandler.DeleteIdea)
		}

		contentGroup := apiGroup.Group("/content-manager")
		{
			contentGroup.GET("", group.ContentHandler.ListContents)
			contentGroup.POST("", group.ContentHandler.CreateContent)
			contentGroup.GET("/:id", group.ContentHandler.GetContent)
			contentGroup.PUT("/:id", group.ContentHandler.UpdateContent)
			contentGroup.DELETE("/:id", group.ContentHandler.DeleteContent)
			contentGroup.POST("/:id/publish", group.ContentHandler.PublishContent)

			contentGroup.GET("/:id/subtasks", group.SubtaskHandler.ListSubtasks)
			contentGroup.POST("/:id/subtasks", group.SubtaskHandler.CreateSubtask)
		}

		subtaskGroup := apiGroup.Group("/subtasks")
		{
			subtaskGroup.PUT("/:subtask_id", group.SubtaskHandler.UpdateSubtask)
			subtaskGroup.DELETE("/:subtask_id", group.SubtaskHandler.DeleteSubtask)
		}

		taskGroup := apiGroup.Group("/tasks")
		{
			taskGroup.GET("", group.TaskHandler.ListTasks)
			taskGroup.POST("", group.TaskHandler.CreateTask)
			taskGroup.GET("/:id", group.TaskHandler.GetTask)
			taskGroup.PUT("/:id", group.TaskHandler.UpdateTask)
			taskGroup.DELETE("/:id", group.TaskHandler.DeleteTask)
		}

		analyticsGroup := apiGroup.Group("/analytics")
		{
			analyticsGroup.GET("", group.AnalyticsHandler.ListRecords)
			analyticsGroup.POST("", group.AnalyticsHandler.CreateRecord)
		}

		apiGroup.GET("/dashboard/summary", group.DashboardHandler.Summary)

		aiGroup := apiGroup.Group("/ai")
		{
			aiGroup.POST("/generate-strategy", group.AIHandler.GenerateStrategy)
			aiGroup.POST("/generate-ideas", group.AIHandler.GenerateIdeas)
			aiGroup.POST("/optimize-content", group.AIHandler.OptimizeContent)
			aiGroup.POST("/analyze-performance", group.AIHandler.AnalyzePerformance)
			aiGroup.POST("/weekly-plan", group.AIHandler.GenerateWeeklyPlan)
		}
	}

	return r
}
