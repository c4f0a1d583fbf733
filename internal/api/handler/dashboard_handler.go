package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
	}
}

func (s *DashboardHandler) Summary(c *gin.Context) {
	summary, err := s.dashboardSvc.Summarize(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
