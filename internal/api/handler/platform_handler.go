package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	platformSvc service.PlatformService
}

func NewPlatformHandler(platformSvc service.PlatformService) *PlatformHandler {
	return &PlatformHandler{
		platformSvc: platformSvc,
	}
}

func (s *PlatformHandler) ListPlatforms(c *gin.Context) {
	platforms, err := s.platformSvc.ListPlatforms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, platforms)
}

func (s *PlatformHandler) GetPlatform(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	platform, err := s.platformSvc.GetPlatform(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, platform)
}

func (s *PlatformHandler) CreatePlatform(c *gin.Context) {
	var req dto.PlatformBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	platform, err := s.platformSvc.CreatePlatform(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, platform)
}

func (s *PlatformHandler) UpdatePlatform(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PlatformBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	platform, err := s.platformSvc.UpdatePlatform(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, platform)
}

func (s *PlatformHandler) DeletePlatform(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.platformSvc.DeletePlatform(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
