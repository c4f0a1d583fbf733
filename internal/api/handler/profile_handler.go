package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileSvc: profileSvc,
	}
}

func (s *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := s.profileSvc.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	profile, err := s.profileSvc.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}
