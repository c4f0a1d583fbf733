package service

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/model"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"

	"gorm.io/gorm"
)

type PlatformService interface {
	CreatePlatform(ctx context.Context, platformDTO *dto.PlatformBaseDTO) (*model.Platform, error)
	GetPlatform(ctx context.Context, id uint64) (*model.Platform, error)
	ListPlatforms(ctx context.Context) ([]*model.Platform, error)
	UpdatePlatform(ctx context.Context, id uint64, platformDTO *dto.PlatformBaseDTO) (*model.Platform, error)
	DeletePlatform(ctx context.Context, id uint64) error
}

type platformServiceImpl struct {
	platformRepo repository.PlatformRepo
}

func NewPlatformService(platformRepo repository.PlatformRepo) PlatformService {
	return &platformServiceImpl{platformRepo: platformRepo}
}

// CreatePlatform 平台名必填且全局唯一
func (s *platformServiceImpl) CreatePlatform(ctx context.Context, platformDTO *dto.PlatformBaseDTO) (*model.Platform, error) {
	if platformDTO.PlatformName == nil || strings.TrimSpace(*platformDTO.PlatformName) == "" {
		return nil, ErrParamInvalid
	}
	name := strings.TrimSpace(*platformDTO.PlatformName)

	exist, err := s.platformRepo.GetPlatformByName(ctx, name)
	if err != nil {
		log.ErrorContext(ctx, "查询平台失败", "name", name, "err", err)
		return nil, UnExpectedError
	}
	if exist != nil {
		return nil, ErrPlatformNameExist
	}

	platform := &model.Platform{PlatformName: name}
	if v := platformDTO.CurrentFollowers.Value; v != nil {
		platform.CurrentFollowers = int(*v)
	}
	if v := platformDTO.GoalFollowers.Value; v != nil {
		platform.GoalFollowers = int(*v)
	}

	if err := s.platformRepo.CreatePlatform(ctx, platform); err != nil {
		log.ErrorContext(ctx, "创建平台失败", "name", name, "err", err)
		return nil, UnExpectedError
	}
	return platform, nil
}

func (s *platformServiceImpl) GetPlatform(ctx context.Context, id uint64) (*model.Platform, error) {
	platform, err := s.platformRepo.GetPlatform(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		log.ErrorContext(ctx, "查询平台失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return platform, nil
}

func (s *platformServiceImpl) ListPlatforms(ctx context.Context) ([]*model.Platform, error) {
	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询平台列表失败", "err", err)
		return nil, UnExpectedError
	}
	return platforms, nil
}

// UpdatePlatform 缺省字段保持原值，改名时检查重名
func (s *platformServiceImpl) UpdatePlatform(ctx context.Context, id uint64, platformDTO *dto.PlatformBaseDTO) (*model.Platform, error) {
	platform, err := s.GetPlatform(ctx, id)
	if err != nil {
		return nil, err
	}

	if platformDTO.PlatformName != nil {
		name := strings.TrimSpace(*platformDTO.PlatformName)
		if name == "" {
			return nil, ErrParamInvalid
		}
		if name != platform.PlatformName {
			exist, err := s.platformRepo.GetPlatformByName(ctx, name)
			if err != nil {
				log.ErrorContext(ctx, "查询平台失败", "name", name, "err", err)
				return nil, UnExpectedError
			}
			if exist != nil && exist.ID != id {
				return nil, ErrPlatformNameExist
			}
		}
		platform.PlatformName = name
	}
	if v := platformDTO.CurrentFollowers.Value; v != nil {
		platform.CurrentFollowers = int(*v)
	}
	if v := platformDTO.GoalFollowers.Value; v != nil {
		platform.GoalFollowers = int(*v)
	}

	if err := s.platformRepo.UpdatePlatform(ctx, platform); err != nil {
		log.ErrorContext(ctx, "更新平台失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return platform, nil
}

func (s *platformServiceImpl) DeletePlatform(ctx context.Context, id uint64) error {
	if _, err := s.GetPlatform(ctx, id); err != nil {
		return err
	}
	if err := s.platformRepo.DeletePlatform(ctx, id); err != nil {
		log.ErrorContext(ctx, "删除平台失败", "id", id, "err", err)
		return UnExpectedError
	}
	return nil
}
