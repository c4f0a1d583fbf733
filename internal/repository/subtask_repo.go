package repository

import (
	"context"

	"github.com/patrickvicente/ai-content-strategist/internal/model"

	"gorm.io/gorm"
)

type SubtaskRepo interface {
	CreateSubtask(ctx context.Context, subtask *model.ContentSubtask) error
	GetSubtask(ctx context.Context, id uint64) (*model.ContentSubtask, error)
	ListSubtasksByContent(ctx context.Context, contentID uint64) ([]*model.ContentSubtask, error)
	UpdateSubtask(ctx context.Context, subtask *model.ContentSubtask) error
	DeleteSubtask(ctx context.Context, id uint64) error
}

type subtaskRepoImpl struct {
	db *gorm.DB
}

func NewSubtaskRepository(db *gorm.DB) SubtaskRepo {
	return &subtaskRepoImpl{db: db}
}

func (s *subtaskRepoImpl) CreateSubtask(ctx context.Context, subtask *model.ContentSubtask) error {
	return s.db.WithContext(ctx).Create(subtask).Error
}

func (s *subtaskRepoImpl) GetSubtask(ctx context.Context, id uint64) (*model.ContentSubtask, error) {
	var subtask model.ContentSubtask
	err := s.db.WithContext(ctx).First(&subtask, id).Error
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

func (s *subtaskRepoImpl) ListSubtasksByContent(ctx context.Context, contentID uint64) ([]*model.ContentSubtask, error) {
	subtasks := make([]*model.ContentSubtask, 0)
	err := s.db.WithContext(ctx).Where("content_id = ?", contentID).Order("id").Find(&subtasks).Error
	if err != nil {
		return nil, err
	}
	return subtasks, nil
}

func (s *subtaskRepoImpl) UpdateSubtask(ctx context.Context, subtask *model.ContentSubtask) error {
	return s.db.WithContext(ctx).Save(subtask).Error
}

func (s *subtaskRepoImpl) DeleteSubtask(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.ContentSubtask{}, id).Error
}
