package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type IdeaHandler struct {
	ideaSvc service.IdeaService
}

func NewIdeaHandler(ideaSvc service.IdeaService) *IdeaHandler {
	return &IdeaHandler{
		ideaSvc: ideaSvc,
	}
}

func (s *IdeaHandler) ListIdeas(c *gin.Context) {
	ideas, err := s.ideaSvc.ListIdeas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ideas)
}

func (s *IdeaHandler) GetIdea(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	idea, err := s.ideaSvc.GetIdea(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, idea)
}

func (s *IdeaHandler) CreateIdea(c *gin.Context) {
	var req dto.IdeaBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	idea, err := s.ideaSvc.CreateIdea(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, idea)
}

func (s *IdeaHandler) UpdateIdea(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.IdeaBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	idea, err := s.ideaSvc.UpdateIdea(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, idea)
}

func (s *IdeaHandler) DeleteIdea(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.ideaSvc.DeleteIdea(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
