package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

func (s *AnalyticsHandler) ListRecords(c *gin.Context) {
	var query dto.AnalyticsListDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}

	records, err := s.analyticsSvc.ListRecords(c.Request.Context(), query.Days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}

func (s *AnalyticsHandler) CreateRecord(c *gin.Context) {
	var req dto.AnalyticsBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	record, err := s.analyticsSvc.CreateRecord(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}
