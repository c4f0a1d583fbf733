package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiSvc service.AIService
}

func NewAIHandler(aiSvc service.AIService) *AIHandler {
	return &AIHandler{
		aiSvc: aiSvc,
	}
}

func (s *AIHandler) GenerateStrategy(c *gin.Context) {
	result, err := s.aiSvc.GenerateStrategy(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AIHandler) GenerateIdeas(c *gin.Context) {
	var req dto.GenerateIdeasDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	ideas, err := s.aiSvc.GenerateIdeas(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ideas)
}

func (s *AIHandler) OptimizeContent(c *gin.Context) {
	var req dto.OptimizeContentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.aiSvc.OptimizeContent(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AIHandler) AnalyzePerformance(c *gin.Context) {
	result, err := s.aiSvc.AnalyzePerformance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AIHandler) GenerateWeeklyPlan(c *gin.Context) {
	result, err := s.aiSvc.GenerateWeeklyPlan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
