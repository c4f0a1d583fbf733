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

type SubtaskService interface {
	ListSubtasks(ctx context.Context, contentID uint64) ([]*model.ContentSubtask, error)
	CreateSubtask(ctx context.Context, contentID uint64, subtaskDTO *dto.SubtaskBaseDTO) (*model.ContentSubtask, error)
	UpdateSubtask(ctx context.Context, id uint64, subtaskDTO *dto.SubtaskBaseDTO) (*model.ContentSubtask, error)
	DeleteSubtask(ctx context.Context, id uint64) error
}

type subtaskServiceImpl struct {
	subtaskRepo repository.SubtaskRepo
	contentRepo repository.ContentRepo
}

func NewSubtaskService(subtaskRepo repository.SubtaskRepo, contentRepo repository.ContentRepo) SubtaskService {
	return &subtaskServiceImpl{
		subtaskRepo: subtaskRepo,
		contentRepo: contentRepo,
	}
}

func (s *subtaskServiceImpl) ListSubtasks(ctx context.Context, contentID uint64) ([]*model.ContentSubtask, error) {
	if err := s.checkContent(ctx, contentID); err != nil {
		return nil, err
	}
	subtasks, err := s.subtaskRepo.ListSubtasksByContent(ctx, contentID)
	if err != nil {
		log.ErrorContext(ctx, "查询子任务列表失败", "content_id", contentID, "err", err)
		return nil, UnExpectedError
	}
	return subtasks, nil
}

func (s *subtaskServiceImpl) CreateSubtask(ctx context.Context, contentID uint64, subtaskDTO *dto.SubtaskBaseDTO) (*model.ContentSubtask, error) {
	if subtaskDTO.TaskTitle == nil || strings.TrimSpace(*subtaskDTO.TaskTitle) == "" {
		return nil, ErrParamInvalid
	}
	if err := s.checkContent(ctx, contentID); err != nil {
		return nil, err
	}

	subtask := &model.ContentSubtask{
		ContentID: contentID,
		TaskTitle: strings.TrimSpace(*subtaskDTO.TaskTitle),
		Status:    consts.TaskStatusPending,
	}
	if err := applySubtaskFields(subtask, subtaskDTO); err != nil {
		return nil, err
	}

	if err := s.subtaskRepo.CreateSubtask(ctx, subtask); err != nil {
		log.ErrorContext(ctx, "创建子任务失败", "content_id", contentID, "err", err)
		return nil, UnExpectedError
	}
	return subtask, nil
}

func (s *subtaskServiceImpl) UpdateSubtask(ctx context.Context, id uint64, subtaskDTO *dto.SubtaskBaseDTO) (*model.ContentSubtask, error) {
	subtask, err := s.subtaskRepo.GetSubtask(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubtaskNotFound
		}
		log.ErrorContext(ctx, "查询子任务失败", "id", id, "err", err)
		return nil, UnExpectedError
	}

	if subtaskDTO.TaskTitle != nil {
		title := strings.TrimSpace(*subtaskDTO.TaskTitle)
		if title == "" {
			return nil, ErrParamInvalid
		}
		subtask.TaskTitle = title
	}
	if err := applySubtaskFields(subtask, subtaskDTO); err != nil {
		return nil, err
	}

	if err := s.subtaskRepo.UpdateSubtask(ctx, subtask); err != nil {
		log.ErrorContext(ctx, "更新子任务失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return subtask, nil
}

func (s *subtaskServiceImpl) DeleteSubtask(ctx context.Context, id uint64) error {
	if _, err := s.subtaskRepo.GetSubtask(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubtaskNotFound
		}
		log.ErrorContext(ctx, "查询子任务失败", "id", id, "err", err)
		return UnExpectedError
	}
	if err := s.subtaskRepo.DeleteSubtask(ctx, id); err != nil {
		log.ErrorContext(ctx, "删除子任务失败", "id", id, "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *subtaskServiceImpl) checkContent(ctx context.Context, contentID uint64) error {
	if _, err := s.contentRepo.GetContent(ctx, contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		log.ErrorContext(ctx, "查询内容失败", "id", contentID, "err", err)
		return UnExpectedError
	}
	return nil
}

func applySubtaskFields(subtask *model.ContentSubtask, subtaskDTO *dto.SubtaskBaseDTO) error {
	if subtaskDTO.Status != nil && *subtaskDTO.Status != "" {
		if !consts.SetTaskStatus[*subtaskDTO.Status] {
			return ErrEnumInvalid
		}
		subtask.Status = *subtaskDTO.Status
	}
	dueDate, present, err := parseFlexTime(subtaskDTO.DueDate)
	if err != nil {
		return err
	}
	if present {
		subtask.DueDate = dueDate
	}
	return nil
}
