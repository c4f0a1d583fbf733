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

type PillarService interface {
	CreatePillar(ctx context.Context, pillarDTO *dto.PillarBaseDTO) (*model.ContentPillar, error)
	GetPillar(ctx context.Context, id uint64) (*model.ContentPillar, error)
	ListPillars(ctx context.Context) ([]*model.ContentPillar, error)
	UpdatePillar(ctx context.Context, id uint64, pillarDTO *dto.PillarBaseDTO) (*model.ContentPillar, error)
	DeletePillar(ctx context.Context, id uint64) error
}

type pillarServiceImpl struct {
	pillarRepo repository.PillarRepo
}

func NewPillarService(pillarRepo repository.PillarRepo) PillarService {
	return &pillarServiceImpl{pillarRepo: pillarRepo}
}

func (s *pillarServiceImpl) CreatePillar(ctx context.Context, pillarDTO *dto.PillarBaseDTO) (*model.ContentPillar, error) {
	if pillarDTO.PillarName == nil || strings.TrimSpace(*pillarDTO.PillarName) == "" {
		return nil, ErrParamInvalid
	}

	pillar := &model.ContentPillar{
		PillarName: strings.TrimSpace(*pillarDTO.PillarName),
		Color:      consts.DefaultPillarColor,
	}
	applyPillarFields(pillar, pillarDTO)

	if err := s.pillarRepo.CreatePillar(ctx, pillar); err != nil {
		log.ErrorContext(ctx, "创建内容支柱失败", "name", pillar.PillarName, "err", err)
		return nil, UnExpectedError
	}
	return pillar, nil
}

func (s *pillarServiceImpl) GetPillar(ctx context.Context, id uint64) (*model.ContentPillar, error) {
	pillar, err := s.pillarRepo.GetPillar(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPillarNotFound
		}
		log.ErrorContext(ctx, "查询内容支柱失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return pillar, nil
}

func (s *pillarServiceImpl) ListPillars(ctx context.Context) ([]*model.ContentPillar, error) {
	pillars, err := s.pillarRepo.ListPillars(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询内容支柱列表失败", "err", err)
		return nil, UnExpectedError
	}
	return pillars, nil
}

func (s *pillarServiceImpl) UpdatePillar(ctx context.Context, id uint64, pillarDTO *dto.PillarBaseDTO) (*model.ContentPillar, error) {
	pillar, err := s.GetPillar(ctx, id)
	if err != nil {
		return nil, err
	}

	if pillarDTO.PillarName != nil {
		name := strings.TrimSpace(*pillarDTO.PillarName)
		if name == "" {
			return nil, ErrParamInvalid
		}
		pillar.PillarName = name
	}
	applyPillarFields(pillar, pillarDTO)

	if err := s.pillarRepo.UpdatePillar(ctx, pillar); err != nil {
		log.ErrorContext(ctx, "更新内容支柱失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return pillar, nil
}

func (s *pillarServiceImpl) DeletePillar(ctx context.Context, id uint64) error {
	if _, err := s.GetPillar(ctx, id); err != nil {
		return err
	}
	if err := s.pillarRepo.DeletePillar(ctx, id); err != nil {
		log.ErrorContext(ctx, "删除内容支柱失败", "id", id, "err", err)
		return UnExpectedError
	}
	return nil
}

func applyPillarFields(pillar *model.ContentPillar, pillarDTO *dto.PillarBaseDTO) {
	if pillarDTO.Description != nil {
		pillar.Description = *pillarDTO.Description
	}
	if pillarDTO.Keywords != nil {
		pillar.Keywords = *pillarDTO.Keywords
	}
	if pillarDTO.TargetAudience != nil {
		pillar.TargetAudience = *pillarDTO.TargetAudience
	}
	if pillarDTO.ContentFrequency != nil {
		pillar.ContentFrequency = *pillarDTO.ContentFrequency
	}
	if pillarDTO.Goals != nil {
		pillar.Goals = *pillarDTO.Goals
	}
	if pillarDTO.Color != nil && strings.TrimSpace(*pillarDTO.Color) != "" {
		pillar.Color = strings.TrimSpace(*pillarDTO.Color)
	}
}
