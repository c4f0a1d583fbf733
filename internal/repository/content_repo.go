package repository

import (
	"context"

	"github.com/patrickvicente/ai-content-strategist/internal/model"

	"gorm.io/gorm"
)

type ContentRepo interface {
	CreateContent(ctx context.Context, item *model.ContentItem, platformIDs []uint64) error
	GetContent(ctx context.Context, id uint64) (*model.ContentItem, error)
	ListContents(ctx context.Context) ([]*model.ContentItem, error)
	ListRecentContents(ctx context.Context, limit int) ([]*model.ContentItem, error)
	ListContentsByStatus(ctx context.Context, status string) ([]*model.ContentItem, error)
	UpdateContent(ctx context.Context, item *model.ContentItem, platformIDs []uint64, replacePlatforms bool) error
	DeleteContent(ctx context.Context, id uint64) error
	CountContents(ctx context.Context) (int64, error)
	CountContentsByStatus(ctx context.Context, status string) (int64, error)
}

type contentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepo {
	return &contentRepoImpl{db: db}
}

func (s *contentRepoImpl) CreateContent(ctx context.Context, item *model.ContentItem, platformIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Platforms", "Idea", "Pillar").Create(item).Error; err != nil {
			return err
		}
		return replacePlatformSet(tx, item.ID, platformIDs)
	})
}

func (s *contentRepoImpl) GetContent(ctx context.Context, id uint64) (*model.ContentItem, error) {
	var item model.ContentItem
	err := s.db.WithContext(ctx).Preload("Platforms").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *contentRepoImpl) ListContents(ctx context.Context) ([]*model.ContentItem, error) {
	items := make([]*model.ContentItem, 0)
	err := s.db.WithContext(ctx).Preload("Platforms").Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *contentRepoImpl) ListRecentContents(ctx context.Context, limit int) ([]*model.ContentItem, error) {
	items := make([]*model.ContentItem, 0)
	err := s.db.WithContext(ctx).Preload("Platforms").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *contentRepoImpl) ListContentsByStatus(ctx context.Context, status string) ([]*model.ContentItem, error) {
	items := make([]*model.ContentItem, 0)
	err := s.db.WithContext(ctx).Preload("Platforms").
		Where("status = ?", status).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateContent 内容字段与平台关联集合在同一事务内落库。
// replacePlatforms 为 false 时不触碰关联表。
func (s *contentRepoImpl) UpdateContent(ctx context.Context, item *model.ContentItem, platformIDs []uint64, replacePlatforms bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Platforms", "Idea", "Pillar").Save(item).Error; err != nil {
			return err
		}
		if !replacePlatforms {
			return nil
		}
		return replacePlatformSet(tx, item.ID, platformIDs)
	})
}

func (s *contentRepoImpl) DeleteContent(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", id).Delete(&model.ContentPlatform{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ContentItem{}, id).Error
	})
}

func (s *contentRepoImpl) CountContents(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ContentItem{}).Count(&count).Error
	return count, err
}

func (s *contentRepoImpl) CountContentsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ContentItem{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// replacePlatformSet 整组替换平台关联，而不是增量合并
func replacePlatformSet(tx *gorm.DB, contentID uint64, platformIDs []uint64) error {
	if err := tx.Where("content_id = ?", contentID).Delete(&model.ContentPlatform{}).Error; err != nil {
		return err
	}
	if len(platformIDs) == 0 {
		return nil
	}
	rows := make([]*model.ContentPlatform, 0, len(platformIDs))
	for _, pid := range platformIDs {
		rows = append(rows, &model.ContentPlatform{ContentID: contentID, PlatformID: pid})
	}
	return tx.Create(rows).Error
}
