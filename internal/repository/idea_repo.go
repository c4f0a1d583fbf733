package repository

import (
	"context"

	"github.com/patrickvicente/ai-content-strategist/internal/model"

	"gorm.io/gorm"
)

type IdeaRepo interface {
	CreateIdea(ctx context.Context, idea *model.ContentIdea) error
	GetIdea(ctx context.Context, id uint64) (*model.ContentIdea, error)
	ListIdeas(ctx context.Context) ([]*model.ContentIdea, error)
	UpdateIdea(ctx context.Context, idea *model.ContentIdea) error
	DeleteIdea(ctx context.Context, id uint64) error
	CountIdeas(ctx context.Context) (int64, error)
}

type ideaRepoImpl struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) IdeaRepo {
	return &ideaRepoImpl{db: db}
}

func (s *ideaRepoImpl) CreateIdea(ctx context.Context, idea *model.ContentIdea) error {
	return s.db.WithContext(ctx).Create(idea).Error
}

func (s *ideaRepoImpl) GetIdea(ctx context.Context, id uint64) (*model.ContentIdea, error) {
	var idea model.ContentIdea
	err := s.db.WithContext(ctx).First(&idea, id).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func (s *ideaRepoImpl) ListIdeas(ctx context.Context) ([]*model.ContentIdea, error) {
	ideas := make([]*model.ContentIdea, 0)
	err := s.db.WithContext(ctx).Order("id").Find(&ideas).Error
	if err != nil {
		return nil, err
	}
	return ideas, nil
}

func (s *ideaRepoImpl) UpdateIdea(ctx context.Context, idea *model.ContentIdea) error {
	return s.db.WithContext(ctx).Save(idea).Error
}

func (s *ideaRepoImpl) DeleteIdea(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.ContentIdea{}, id).Error
}

func (s *ideaRepoImpl) CountIdeas(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ContentIdea{}).Count(&count).Error
	return count, err
}
