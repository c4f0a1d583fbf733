package repository

import (
	"context"
	"errors"

	"github.com/patrickvicente/ai-content-strategist/internal/model"

	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetProfile(ctx context.Context) (*model.Profile, error)
	CreateProfile(ctx context.Context, profile *model.Profile) error
	UpdateProfile(ctx context.Context, profile *model.Profile) error
}

type profileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepo {
	return &profileRepoImpl{db: db}
}

// GetProfile 取第一行，不存在时返回 nil
func (s *profileRepoImpl) GetProfile(ctx context.Context) (*model.Profile, error) {
	var profile model.Profile
	err := s.db.WithContext(ctx).Order("id").First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (s *profileRepoImpl) CreateProfile(ctx context.Context, profile *model.Profile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

func (s *profileRepoImpl) UpdateProfile(ctx context.Context, profile *model.Profile) error {
	return s.db.WithContext(ctx).Save(profile).Error
}
