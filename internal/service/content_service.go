package service

import (
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/model"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/consts"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type ContentService interface {
	CreateContent(ctx context.Context, contentDTO *dto.ContentBaseDTO) (*dto.ContentItemDTO, error)
	GetContent(ctx context.Context, id uint64) (*dto.ContentItemDTO, error)
	ListContents(ctx context.Context) ([]*dto.ContentItemDTO, error)
	UpdateContent(ctx context.Context, id uint64, contentDTO *dto.ContentBaseDTO) (*dto.ContentItemDTO, error)
	PublishContent(ctx context.Context, id uint64, publishDTO *dto.PublishDTO) (*dto.ContentItemDTO, error)
	DeleteContent(ctx context.Context, id uint64) error
}

type contentServiceImpl struct {
	contentRepo  repository.ContentRepo
	platformRepo repository.PlatformRepo
}

func NewContentService(contentRepo repository.ContentRepo, platformRepo repository.PlatformRepo) ContentService {
	return &contentServiceImpl{
		contentRepo:  contentRepo,
		platformRepo: platformRepo,
	}
}

// CreateContent 标题必填；platform_ids 里不存在的平台直接丢弃
func (s *contentServiceImpl) CreateContent(ctx context.Context, contentDTO *dto.ContentBaseDTO) (*dto.ContentItemDTO, error) {
	if contentDTO.ContentTitle == nil || strings.TrimSpace(*contentDTO.ContentTitle) == "" {
		return nil, ErrParamInvalid
	}

	item := &model.ContentItem{
		ContentTitle:    strings.TrimSpace(*contentDTO.ContentTitle),
		ContentIdeaID:   contentDTO.ContentIdeaID.Uint64(),
		ContentPillarID: contentDTO.ContentPillarID.Uint64(),
		Status:          consts.ContentStatusPlanning,
	}
	if err := applyContentFields(item, contentDTO); err != nil {
		return nil, err
	}

	platformIDs, err := s.resolvePlatformIDs(ctx, contentDTO.PlatformIDs)
	if err != nil {
		return nil, err
	}

	if err := s.contentRepo.CreateContent(ctx, item, platformIDs); err != nil {
		log.ErrorContext(ctx, "创建内容失败", "title", item.ContentTitle, "err", err)
		return nil, UnExpectedError
	}
	return s.GetContent(ctx, item.ID)
}

func (s *contentServiceImpl) GetContent(ctx context.Context, id uint64) (*dto.ContentItemDTO, error) {
	item, err := s.getContentModel(ctx, id)
	if err != nil {
		return nil, err
	}
	return toContentItemDTO(item), nil
}

func (s *contentServiceImpl) ListContents(ctx context.Context) ([]*dto.ContentItemDTO, error) {
	items, err := s.contentRepo.ListContents(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询内容列表失败", "err", err)
		return nil, UnExpectedError
	}
	result := make([]*dto.ContentItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, toContentItemDTO(item))
	}
	return result, nil
}

// UpdateContent platform_ids 缺省时不触碰关联，出现时整组替换
func (s *contentServiceImpl) UpdateContent(ctx context.Context, id uint64, contentDTO *dto.ContentBaseDTO) (*dto.ContentItemDTO, error) {
	item, err := s.getContentModel(ctx, id)
	if err != nil {
		return nil, err
	}

	if contentDTO.ContentTitle != nil {
		title := strings.TrimSpace(*contentDTO.ContentTitle)
		if title == "" {
			return nil, ErrParamInvalid
		}
		item.ContentTitle = title
	}
	if contentDTO.ContentIdeaID.Value != nil {
		item.ContentIdeaID = contentDTO.ContentIdeaID.Uint64()
	}
	if contentDTO.ContentPillarID.Value != nil {
		item.ContentPillarID = contentDTO.ContentPillarID.Uint64()
	}
	if err := applyContentFields(item, contentDTO); err != nil {
		return nil, err
	}

	replacePlatforms := contentDTO.PlatformIDs != nil
	var platformIDs []uint64
	if replacePlatforms {
		platformIDs, err = s.resolvePlatformIDs(ctx, contentDTO.PlatformIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.contentRepo.UpdateContent(ctx, item, platformIDs, replacePlatforms); err != nil {
		log.ErrorContext(ctx, "更新内容失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return s.GetContent(ctx, id)
}

// PublishContent 发布转移：状态置为 published 并补齐发布信息。
// 重复发布按幂等处理，提交的字段继续覆盖。
func (s *contentServiceImpl) PublishContent(ctx context.Context, id uint64, publishDTO *dto.PublishDTO) (*dto.ContentItemDTO, error) {
	item, err := s.getContentModel(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Status = consts.ContentStatusPublished

	publishTime, present, err := parseFlexTime(publishDTO.PublishTime)
	if err != nil {
		return nil, err
	}
	if present && publishTime != nil {
		item.PublishTime = publishTime
	} else {
		now := time.Now()
		item.PublishTime = &now
	}

	if publishDTO.ContentLink != nil {
		item.ContentLink = *publishDTO.ContentLink
	}
	if v := publishDTO.MinutesSpent.Value; v != nil {
		item.MinutesSpent = v
	}
	if publishDTO.Notes != nil {
		item.Notes = *publishDTO.Notes
	}

	replacePlatforms := publishDTO.PlatformIDs != nil
	var platformIDs []uint64
	if replacePlatforms {
		platformIDs, err = s.resolvePlatformIDs(ctx, publishDTO.PlatformIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.contentRepo.UpdateContent(ctx, item, platformIDs, replacePlatforms); err != nil {
		log.ErrorContext(ctx, "发布内容失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return s.GetContent(ctx, id)
}

func (s *contentServiceImpl) DeleteContent(ctx context.Context, id uint64) error {
	if _, err := s.getContentModel(ctx, id); err != nil {
		return err
	}
	if err := s.contentRepo.DeleteContent(ctx, id); err != nil {
		log.ErrorContext(ctx, "删除内容失败", "id", id, "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *contentServiceImpl) getContentModel(ctx context.Context, id uint64) (*model.ContentItem, error) {
	item, err := s.contentRepo.GetContent(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		log.ErrorContext(ctx, "查询内容失败", "id", id, "err", err)
		return nil, UnExpectedError
	}
	return item, nil
}

// resolvePlatformIDs 过滤出真实存在的平台 id，保持入参顺序
func (s *contentServiceImpl) resolvePlatformIDs(ctx context.Context, ids *dto.FlexIDs) ([]uint64, error) {
	if ids == nil || len(*ids) == 0 {
		return nil, nil
	}
	platforms, err := s.platformRepo.GetPlatformByIds(ctx, *ids)
	if err != nil {
		log.ErrorContext(ctx, "查询平台失败", "ids", *ids, "err", err)
		return nil, UnExpectedError
	}
	exist := make(map[uint64]bool, len(platforms))
	for _, p := range platforms {
		exist[p.ID] = true
	}
	result := make([]uint64, 0, len(*ids))
	seen := make(map[uint64]bool, len(*ids))
	for _, id := range *ids {
		if exist[id] && !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result, nil
}

func applyContentFields(item *model.ContentItem, contentDTO *dto.ContentBaseDTO) error {
	if contentDTO.Status != nil && *contentDTO.Status != "" {
		if !consts.SetContentStatus[*contentDTO.Status] {
			return ErrEnumInvalid
		}
		item.Status = *contentDTO.Status
	}
	if contentDTO.ContentType != nil && *contentDTO.ContentType != "" {
		if !consts.SetContentType[*contentDTO.ContentType] {
			return ErrEnumInvalid
		}
		item.ContentType = contentDTO.ContentType
	}
	if contentDTO.ContentFormat != nil && *contentDTO.ContentFormat != "" {
		if !consts.SetContentFormat[*contentDTO.ContentFormat] {
			return ErrEnumInvalid
		}
		item.ContentFormat = contentDTO.ContentFormat
	}

	publishTime, present, err := parseFlexTime(contentDTO.PublishTime)
	if err != nil {
		return err
	}
	if present {
		item.PublishTime = publishTime
	}

	if contentDTO.Intention != nil {
		item.Intention = *contentDTO.Intention
	}
	if contentDTO.Hook != nil {
		item.Hook = *contentDTO.Hook
	}
	if contentDTO.Caption != nil {
		item.Caption = *contentDTO.Caption
	}
	if contentDTO.Script != nil {
		item.Script = *contentDTO.Script
	}
	if contentDTO.Music != nil {
		item.Music = *contentDTO.Music
	}
	if v := contentDTO.Duration.Value; v != nil {
		item.Duration = v
	}
	if v := contentDTO.MinutesSpent.Value; v != nil {
		item.MinutesSpent = v
	}
	if contentDTO.ContentLink != nil {
		item.ContentLink = *contentDTO.ContentLink
	}
	if contentDTO.HashtagsUsed != nil {
		item.HashtagsUsed = *contentDTO.HashtagsUsed
	}
	if contentDTO.Notes != nil {
		item.Notes = *contentDTO.Notes
	}
	if v := contentDTO.Views.Value; v != nil {
		item.Views = *v
	}
	if v := contentDTO.Likes.Value; v != nil {
		item.Likes = *v
	}
	if v := contentDTO.Shares.Value; v != nil {
		item.Shares = *v
	}
	if v := contentDTO.Comments.Value; v != nil {
		item.Comments = *v
	}
	if v := contentDTO.Saves.Value; v != nil {
		item.Saves = *v
	}
	if v := contentDTO.RetentionRate.Value; v != nil {
		item.RetentionRate = *v
	}
	return nil
}

func toContentItemDTO(item *model.ContentItem) *dto.ContentItemDTO {
	result := &dto.ContentItemDTO{}
	_ = copier.Copy(result, item)
	result.Platforms = make([]dto.PlatformSlimDTO, 0, len(item.Platforms))
	for _, p := range item.Platforms {
		result.Platforms = append(result.Platforms, dto.PlatformSlimDTO{
			ID:           p.ID,
			PlatformName: p.PlatformName,
		})
	}
	return result
}
