package service

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/model"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/consts"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"

	"gorm.io/gorm"
)

type TaskService interface {
	CreateTask(ctx context.Context, taskDTO *dto.TaskBaseDTO) (*model.Task, error)
	GetTask(ctx context.Context, id uint64) (*model.Task, error)
	ListTasks(ctx context.Context) ([]*model.Task, error)
	UpdateTask(ctx context.Context, id uint64, taskDTO *dto.TaskBaseDTO) (*model.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
}

type taskServiceImpl struct {
	taskRepo repository.TaskRepo
}

func NewTaskService(taskRepo repository.TaskRepo) TaskService {
	return &taskServiceImpl{taskRepo: taskRepo}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, taskDTO *dto.TaskBaseDTO) (*model.Task, error) {
	if taskDTO.Title == nil || strings.TrimSpace(*taskDTO.Title) == "" {
		return nil, ErrParamInvalid
	}

	task := &model.Task{
		Title:     strings.TrimSpace(*taskDTO.Title),
		ContentID: taskDTO.ContentID.Uint64(),
		Status:    consts.TaskStatusPending,
		Priority:  consts.PriorityMedium,
	}
	if err := applyTaskFields(task, taskDTO); err != nil {
		return nil, err
	}

	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		log.ErrorContext(ctx, "创建任务失败", "title", task.Title, "err", err)
		return nil, UnExpectedError
	}
	return task, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id uint64) (*model.Task, error) {
	task, err := s.taskRepo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		log.ErrorContext(ctx, "查询任务失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return task, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*model.Task, error) {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询任务列表失败", "err", err)
		return nil, UnExpectedError
	}
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id uint64, taskDTO *dto.TaskBaseDTO) (*model.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if taskDTO.Title != nil {
		title := strings.TrimSpace(*taskDTO.Title)
		if title == "" {
			return nil, ErrParamInvalid
		}
		task.Title = title
	}
	if taskDTO.ContentID.Value != nil {
		task.ContentID = taskDTO.ContentID.Uint64()
	}
	if err := applyTaskFields(task, taskDTO); err != nil {
		return nil, err
	}

	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		log.ErrorContext(ctx, "更新任务失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uint64) error {
	if _, err := s.GetTask(ctx, id); err != nil {
		return err
	}
	if err := s.taskRepo.DeleteTask(ctx, id); err != nil {
		log.ErrorContext(ctx, "删除任务失败", "id", id, "err", err)
		return UnExpectedError
	}
	return nil
}

func applyTaskFields(task *model.Task, taskDTO *dto.TaskBaseDTO) error {
	if taskDTO.Description != nil {
		task.Description = *taskDTO.Description
	}

	dueDate, present, err := parseFlexTime(taskDTO.DueDate)
	if err != nil {
		return err
	}
	if present {
		task.DueDate = dueDate
	}

	if taskDTO.Status != nil && *taskDTO.Status != "" {
		if !consts.SetTaskStatus[*taskDTO.Status] {
			return ErrEnumInvalid
		}
		task.Status = *taskDTO.Status
	}
	if taskDTO.Priority != nil && *taskDTO.Priority != "" {
		if !consts.SetPriority[*taskDTO.Priority] {
			return ErrEnumInvalid
		}
		task.Priority = *taskDTO.Priority
	}
	if v := taskDTO.EstimatedHours.Value; v != nil {
		task.EstimatedHours = v
	}
	return nil
}
