package repository

import (
	"context"
	"errors"

	"github.com/patrickvicente/ai-content-strategist/internal/model"

	"gorm.io/gorm"
)

type PlatformRepo interface {
	CreatePlatform(ctx context.Context, platform *model.Platform) error
	GetPlatform(ctx context.Context, id uint64) (*model.Platform, error)
	GetPlatformByName(ctx context.Context, name string) (*model.Platform, error)
	GetPlatformByIds(ctx context.Context, ids []uint64) ([]*model.Platform, error)
	ListPlatforms(ctx context.Context) ([]*model.Platform, error)
	UpdatePlatform(ctx context.Context, platform *model.Platform) error
	DeletePlatform(ctx context.Context, id uint64) error
	CountPlatforms(ctx context.Context) (int64, error)
}

type platformRepoImpl struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepo {
	return &platformRepoImpl{db: db}
}

func (s *platformRepoImpl) CreatePlatform(ctx context.Context, platform *model.Platform) error {
	return s.db.WithContext(ctx).Create(platform).Error
}

func (s *platformRepoImpl) GetPlatform(ctx context.Context, id uint64) (*model.Platform, error) {
	var platform model.Platform
	err := s.db.WithContext(ctx).First(&platform, id).Error
	if err != nil {
		return nil, err
	}
	return &platform, nil
}

func (s *platformRepoImpl) GetPlatformByName(ctx context.Context, name string) (*model.Platform, error) {
	var platform model.Platform
	err := s.db.WithContext(ctx).Where("platform_name = ?", name).First(&platform).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &platform, nil
}

func (s *platformRepoImpl) GetPlatformByIds(ctx context.Context, ids []uint64) ([]*model.Platform, error) {
	platforms := make([]*model.Platform, 0)
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&platforms).Error
	if err != nil {
		return nil, err
	}
	return platforms, nil
}

func (s *platformRepoImpl) ListPlatforms(ctx context.Context) ([]*model.Platform, error) {
	platforms := make([]*model.Platform, 0)
	err := s.db.WithContext(ctx).Order("id").Find(&platforms).Error
	if err != nil {
		return nil, err
	}
	return platforms, nil
}

func (s *platformRepoImpl) UpdatePlatform(ctx context.Context, platform *model.Platform) error {
	return s.db.WithContext(ctx).Save(platform).Error
}

func (s *platformRepoImpl) DeletePlatform(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Platform{}, id).Error
}

func (s *platformRepoImpl) CountPlatforms(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Platform{}).Count(&count).Error
	return count, err
}
