package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type PillarHandler struct {
	pillarSvc service.PillarService
}

func NewPillarHandler(pillarSvc service.PillarService) *PillarHandler {
	return &PillarHandler{
		pillarSvc: pillarSvc,
	}
}

func (s *PillarHandler) ListPillars(c *gin.Context) {
	pillars, err := s.pillarSvc.ListPillars(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pillars)
}

func (s *PillarHandler) GetPillar(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	pillar, err := s.pillarSvc.GetPillar(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pillar)
}

func (s *PillarHandler) CreatePillar(c *gin.Context) {
	var req dto.PillarBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	pillar, err := s.pillarSvc.CreatePillar(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, pillar)
}

func (s *PillarHandler) UpdatePillar(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PillarBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	pillar, err := s.pillarSvc.UpdatePillar(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pillar)
}

func (s *PillarHandler) DeletePillar(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.pillarSvc.DeletePillar(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
