package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type SubtaskHandler struct {
	subtaskSvc service.SubtaskService
}

func NewSubtaskHandler(subtaskSvc service.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{
		subtaskSvc: subtaskSvc,
	}
}

func (s *SubtaskHandler) ListSubtasks(c *gin.Context) {
	contentID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	subtasks, err := s.subtaskSvc.ListSubtasks(c.Request.Context(), contentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, subtasks)
}

func (s *SubtaskHandler) CreateSubtask(c *gin.Context) {
	contentID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SubtaskBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	subtask, err := s.subtaskSvc.CreateSubtask(c.Request.Context(), contentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subtask)
}

func (s *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	id, err := parseIDParam(c, "subtask_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SubtaskBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	subtask, err := s.subtaskSvc.UpdateSubtask(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, subtask)
}

func (s *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	id, err := parseIDParam(c, "subtask_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.subtaskSvc.DeleteSubtask(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
