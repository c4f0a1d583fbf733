package service

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/model"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/consts"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/llm"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"

	"gorm.io/gorm"
)

type IdeaService interface {
	CreateIdea(ctx context.Context, ideaDTO *dto.IdeaBaseDTO) (*model.ContentIdea, error)
	GetIdea(ctx context.Context, id uint64) (*model.ContentIdea, error)
	ListIdeas(ctx context.Context) ([]*model.ContentIdea, error)
	UpdateIdea(ctx context.Context, id uint64, ideaDTO *dto.IdeaBaseDTO) (*model.ContentIdea, error)
	DeleteIdea(ctx context.Context, id uint64) error
	CreateIdeasFromDrafts(ctx context.Context, pillarID uint64, drafts []*llm.IdeaDraft) ([]*model.ContentIdea, error)
}

type ideaServiceImpl struct {
	ideaRepo repository.IdeaRepo
}

func NewIdeaService(ideaRepo repository.IdeaRepo) IdeaService {
	return &ideaServiceImpl{ideaRepo: ideaRepo}
}

// CreateIdea 标题必填，优先级与状态走闭合枚举，缺省为 medium/pending
func (s *ideaServiceImpl) CreateIdea(ctx context.Context, ideaDTO *dto.IdeaBaseDTO) (*model.ContentIdea, error) {
	if ideaDTO.Title == nil || strings.TrimSpace(*ideaDTO.Title) == "" {
		return nil, ErrParamInvalid
	}

	idea := &model.ContentIdea{
		Title:           strings.TrimSpace(*ideaDTO.Title),
		ContentPillarID: ideaDTO.ContentPillarID.Uint64(),
		Priority:        consts.PriorityMedium,
		Status:          consts.IdeaStatusPending,
	}
	if err := applyIdeaFields(idea, ideaDTO); err != nil {
		return nil, err
	}

	if err := s.ideaRepo.CreateIdea(ctx, idea); err != nil {
		log.ErrorContext(ctx, "创建内容灵感失败", "title", idea.Title, "err", err)
		return nil, UnExpectedError
	}
	return idea, nil
}

func (s *ideaServiceImpl) GetIdea(ctx context.Context, id uint64) (*model.ContentIdea, error) {
	idea, err := s.ideaRepo.GetIdea(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdeaNotFound
		}
		log.ErrorContext(ctx, "查询内容灵感失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return idea, nil
}

func (s *ideaServiceImpl) ListIdeas(ctx context.Context) ([]*model.ContentIdea, error) {
	ideas, err := s.ideaRepo.ListIdeas(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询内容灵感列表失败", "err", err)
		return nil, UnExpectedError
	}
	return ideas, nil
}

func (s *ideaServiceImpl) UpdateIdea(ctx context.Context, id uint64, ideaDTO *dto.IdeaBaseDTO) (*model.ContentIdea, error) {
	idea, err := s.GetIdea(ctx, id)
	if err != nil {
		return nil, err
	}

	if ideaDTO.Title != nil {
		title := strings.TrimSpace(*ideaDTO.Title)
		if title == "" {
			return nil, ErrParamInvalid
		}
		idea.Title = title
	}
	if ideaDTO.ContentPillarID.Value != nil {
		idea.ContentPillarID = ideaDTO.ContentPillarID.Uint64()
	}
	if err := applyIdeaFields(idea, ideaDTO); err != nil {
		return nil, err
	}

	if err := s.ideaRepo.UpdateIdea(ctx, idea); err != nil {
		log.ErrorContext(ctx, "更新内容灵感失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return idea, nil
}

func (s *ideaServiceImpl) DeleteIdea(ctx context.Context, id uint64) error {
	if _, err := s.GetIdea(ctx, id); err != nil {
		return err
	}
	if err := s.ideaRepo.DeleteIdea(ctx, id); err != nil {
		log.ErrorContext(ctx, "删除内容灵感失败", "id", id, "err", err)
		return UnExpectedError
	}
	return nil
}

// CreateIdeasFromDrafts AI 批量草稿落库，草稿里的非法优先级回退到 medium
func (s *ideaServiceImpl) CreateIdeasFromDrafts(ctx context.Context, pillarID uint64, drafts []*llm.IdeaDraft) ([]*model.ContentIdea, error) {
	ideas := make([]*model.ContentIdea, 0, len(drafts))
	for _, draft := range drafts {
		title := strings.TrimSpace(draft.Title)
		if title == "" {
			continue
		}
		priority := strings.ToLower(strings.TrimSpace(draft.Priority))
		if !consts.SetPriority[priority] {
			priority = consts.PriorityMedium
		}
		idea := &model.ContentIdea{
			Title:           title,
			Description:     draft.Description,
			ContentPillarID: &pillarID,
			Priority:        priority,
			Status:          consts.IdeaStatusPending,
		}
		if err := s.ideaRepo.CreateIdea(ctx, idea); err != nil {
			log.ErrorContext(ctx, "保存AI灵感草稿失败", "title", title, "err", err)
			return nil, UnExpectedError
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

func applyIdeaFields(idea *model.ContentIdea, ideaDTO *dto.IdeaBaseDTO) error {
	if ideaDTO.Description != nil {
		idea.Description = *ideaDTO.Description
	}
	if ideaDTO.InspirationLink != nil {
		idea.InspirationLink = *ideaDTO.InspirationLink
	}
	if ideaDTO.Priority != nil && *ideaDTO.Priority != "" {
		if !consts.SetPriority[*ideaDTO.Priority] {
			return ErrEnumInvalid
		}
		idea.Priority = *ideaDTO.Priority
	}
	if ideaDTO.Status != nil && *ideaDTO.Status != "" {
		if !consts.SetIdeaStatus[*ideaDTO.Status] {
			return ErrEnumInvalid
		}
		idea.Status = *ideaDTO.Status
	}
	return nil
}
