package service

import (
	"context"
	log "log/slog"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/model"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"
)

type ProfileService interface {
	GetProfile(ctx context.Context) (*model.Profile, error)
	UpdateProfile(ctx context.Context, profileDTO *dto.ProfileDTO) (*model.Profile, error)
}

type profileServiceImpl struct {
	profileRepo repository.ProfileRepo
}

func NewProfileService(profileRepo repository.ProfileRepo) ProfileService {
	return &profileServiceImpl{profileRepo: profileRepo}
}

// GetProfile 单行档案，首次访问时惰性创建空记录
func (s *profileServiceImpl) GetProfile(ctx context.Context) (*model.Profile, error) {
	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询个人档案失败", "err", err)
		return nil, UnExpectedError
	}
	if profile != nil {
		return profile, nil
	}

	profile = &model.Profile{}
	if err := s.profileRepo.CreateProfile(ctx, profile); err != nil {
		log.ErrorContext(ctx, "创建个人档案失败", "err", err)
		return nil, UnExpectedError
	}
	return profile, nil
}

// UpdateProfile 只更新请求里出现的字段
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, profileDTO *dto.ProfileDTO) (*model.Profile, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	if profileDTO.Mission != nil {
		profile.Mission = *profileDTO.Mission
	}
	if profileDTO.Goals != nil {
		profile.Goals = *profileDTO.Goals
	}
	if profileDTO.Vision != nil {
		profile.Vision = *profileDTO.Vision
	}
	if profileDTO.Niche != nil {
		profile.Niche = *profileDTO.Niche
	}
	if profileDTO.TargetAudience != nil {
		profile.TargetAudience = *profileDTO.TargetAudience
	}
	if profileDTO.Stories != nil {
		profile.Stories = *profileDTO.Stories
	}
	if profileDTO.Motivation != nil {
		profile.Motivation = *profileDTO.Motivation
	}

	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		log.ErrorContext(ctx, "更新个人档案失败", "err", err)
		return nil, UnExpectedError
	}
	return profile, nil
}
