package repository

import (
	"context"

	"github.com/patrickvicente/ai-content-strategist/internal/model"

	"gorm.io/gorm"
)

type TaskRepo interface {
	CreateTask(ctx context.Context, task *model.Task) error
	GetTask(ctx context.Context, id uint64) (*model.Task, error)
	ListTasks(ctx context.Context) ([]*model.Task, error)
	ListRecentTasks(ctx context.Context, limit int) ([]*model.Task, error)
	UpdateTask(ctx context.Context, task *model.Task) error
	DeleteTask(ctx context.Context, id uint64) error
	CountTasks(ctx context.Context) (int64, error)
	CountTasksByStatus(ctx context.Context, status string) (int64, error)
}

type taskRepoImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepo {
	return &taskRepoImpl{db: db}
}

func (s *taskRepoImpl) CreateTask(ctx context.Context, task *model.Task) error {
	return s.db.WithContext(ctx).Create(task).Error
}

func (s *taskRepoImpl) GetTask(ctx context.Context, id uint64) (*model.Task, error) {
	var task model.Task
	err := s.db.WithContext(ctx).First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *taskRepoImpl) ListTasks(ctx context.Context) ([]*model.Task, error) {
	tasks := make([]*model.Task, 0)
	err := s.db.WithContext(ctx).Order("id").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *taskRepoImpl) ListRecentTasks(ctx context.Context, limit int) ([]*model.Task, error) {
	tasks := make([]*model.Task, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *taskRepoImpl) UpdateTask(ctx context.Context, task *model.Task) error {
	return s.db.WithContext(ctx).Save(task).Error
}

func (s *taskRepoImpl) DeleteTask(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Task{}, id).Error
}

func (s *taskRepoImpl) CountTasks(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error
	return count, err
}

func (s *taskRepoImpl) CountTasksByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Task{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
