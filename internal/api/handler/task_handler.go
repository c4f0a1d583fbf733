package handler

import (
	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/response"
	"github.com/patrickvicente/ai-content-strategist/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskSvc service.TaskService
}

func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskSvc: taskSvc,
	}
}

func (s *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := s.taskSvc.ListTasks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tasks)
}

func (s *TaskHandler) GetTask(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	task, err := s.taskSvc.GetTask(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, task)
}

func (s *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.TaskBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	task, err := s.taskSvc.CreateTask(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, task)
}

func (s *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.TaskBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	task, err := s.taskSvc.UpdateTask(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, task)
}

func (s *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := s.taskSvc.DeleteTask(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
