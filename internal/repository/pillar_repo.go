package repository

import (
	"context"

	"github.com/patrickvicente/ai-content-strategist/internal/model"

	"gorm.io/gorm"
)

type PillarRepo interface {
	CreatePillar(ctx context.Context, pillar *model.ContentPillar) error
	GetPillar(ctx context.Context, id uint64) (*model.ContentPillar, error)
	ListPillars(ctx context.Context) ([]*model.ContentPillar, error)
	UpdatePillar(ctx context.Context, pillar *model.ContentPillar) error
	DeletePillar(ctx context.Context, id uint64) error
	CountPillars(ctx context.Context) (int64, error)
}

type pillarRepoImpl struct {
	db *gorm.DB
}

func NewPillarRepository(db *gorm.DB) PillarRepo {
	return &pillarRepoImpl{db: db}
}

func (s *pillarRepoImpl) CreatePillar(ctx context.Context, pillar *model.ContentPillar) error {
	return s.db.WithContext(ctx).Create(pillar).Error
}

func (s *pillarRepoImpl) GetPillar(ctx context.Context, id uint64) (*model.ContentPillar, error) {
	var pillar model.ContentPillar
	err := s.db.WithContext(ctx).First(&pillar, id).Error
	if err != nil {
		return nil, err
	}
	return &pillar, nil
}

func (s *pillarRepoImpl) ListPillars(ctx context.Context) ([]*model.ContentPillar, error) {
	pillars := make([]*model.ContentPillar, 0)
	err := s.db.WithContext(ctx).Order("id").Find(&pillars).Error
	if err != nil {
		return nil, err
	}
	return pillars, nil
}

func (s *pillarRepoImpl) UpdatePillar(ctx context.Context, pillar *model.ContentPillar) error {
	return s.db.WithContext(ctx).Save(pillar).Error
}

// DeletePillar 不级联，引用它的灵感和内容保留悬空外键
func (s *pillarRepoImpl) DeletePillar(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.ContentPillar{}, id).Error
}

func (s *pillarRepoImpl) CountPillars(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ContentPillar{}).Count(&count).Error
	return count, err
}
