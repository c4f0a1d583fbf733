package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

func (s *ContentHandler) ListContents(c *gin.Context) {
	items, err := s.contentSvc.ListContents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

func (s *ContentHandler) GetContent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.contentSvc.GetContent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *ContentHandler) CreateContent(c *gin.Context) {
	var req dto.ContentBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.contentSvc.CreateContent(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

func (s *ContentHandler) UpdateContent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ContentBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.contentSvc.UpdateContent(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

// PublishContent 发布转移，请求体可为空
func (s *ContentHandler) PublishContent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PublishDTO
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err)
			return
		}
	}

	item, err := s.contentSvc.PublishContent(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *ContentHandler) DeleteContent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.contentSvc.DeleteContent(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
