package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"

	"gorm.io/gorm"
)

type contentFixture struct {
	svc         ContentService
	platformSvc PlatformService
	db          *gorm.DB
}

func newContentFixture(t *testing.T) *contentFixture {
	db := newTestDB(t)
	platformRepo := repository.NewPlatformRepository(db)
	return &contentFixture{
		svc:         NewContentService(repository.NewContentRepository(db), platformRepo),
		platformSvc: NewPlatformService(platformRepo),
		db:          db,
	}
}

func (f *contentFixture) platform(t *testing.T, name string) uint64 {
	t.Helper()
	p, err := f.platformSvc.CreatePlatform(context.Background(), &dto.PlatformBaseDTO{PlatformName: strp(name)})
	if err != nil {
		t.Fatalf("seed platform %s: %v", name, err)
	}
	return p.ID
}

func TestContentCreateRequiresTitle(t *testing.T) {
	f := newContentFixture(t)

	if _, err := f.svc.CreateContent(context.Background(), &dto.ContentBaseDTO{}); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("err = %v, want ErrParamInvalid", err)
	}
}

func TestContentCreateDropsUnknownPlatforms(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()
	tiktok := f.platform(t, "TikTok")

	item, err := f.svc.CreateContent(ctx, &dto.ContentBaseDTO{
		ContentTitle: strp("fit check friday"),
		PlatformIDs:  flexIDs(tiktok, 999),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(item.Platforms) != 1 || item.Platforms[0].ID != tiktok {
		t.Fatalf("platforms = %v, want only tiktok", item.Platforms)
	}
	if item.Status != "planning" {
		t.Fatalf("status = %s, want planning", item.Status)
	}
}

func TestContentUpdatePlatformSemantics(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()
	tiktok := f.platform(t, "TikTok")
	ig := f.platform(t, "Instagram")

	item, err := f.svc.CreateContent(ctx, &dto.ContentBaseDTO{
		ContentTitle: strp("cinematic vlog"),
		PlatformIDs:  flexIDs(tiktok),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// platform_ids 缺省：关联不动
	updated, err := f.svc.UpdateContent(ctx, item.ID, &dto.ContentBaseDTO{Hook: strp("wait for it")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Platforms) != 1 || updated.Platforms[0].ID != tiktok {
		t.Fatalf("platforms after field update = %v", updated.Platforms)
	}

	// platform_ids 出现：整组替换
	updated, err = f.svc.UpdateContent(ctx, item.ID, &dto.ContentBaseDTO{PlatformIDs: flexIDs(ig)})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if len(updated.Platforms) != 1 || updated.Platforms[0].ID != ig {
		t.Fatalf("platforms after replace = %v", updated.Platforms)
	}

	// 空数组：清空
	updated, err = f.svc.UpdateContent(ctx, item.ID, &dto.ContentBaseDTO{PlatformIDs: flexIDs()})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(updated.Platforms) != 0 {
		t.Fatalf("platforms after clear = %v", updated.Platforms)
	}
}

func TestContentRejectsBadEnum(t *testing.T) {
	f := newContentFixture(t)

	_, err := f.svc.CreateContent(context.Background(), &dto.ContentBaseDTO{
		ContentTitle: strp("bad status"),
		Status:       strp("live"),
	})
	if !errors.Is(err, ErrEnumInvalid) {
		t.Fatalf("err = %v, want ErrEnumInvalid", err)
	}
}

func TestContentPublish(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()
	tiktok := f.platform(t, "TikTok")

	item, err := f.svc.CreateContent(ctx, &dto.ContentBaseDTO{
		ContentTitle: strp("grwm launch"),
		MinutesSpent: flexFloat(90),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	published, err := f.svc.PublishContent(ctx, item.ID, &dto.PublishDTO{
		ContentLink: strp("https://tiktok.com/@me/video/1"),
		PlatformIDs: flexIDs(tiktok),
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.Status != "published" {
		t.Fatalf("status = %s, want published", published.Status)
	}
	if published.PublishTime == nil || time.Since(*published.PublishTime) > time.Minute {
		t.Fatalf("publish time not set to now: %v", published.PublishTime)
	}
	if published.ContentLink != "https://tiktok.com/@me/video/1" {
		t.Fatalf("content link = %q", published.ContentLink)
	}
	// 负载里没有 minutes_spent 时保留原值
	if published.MinutesSpent == nil || *published.MinutesSpent != 90 {
		t.Fatalf("minutes spent = %v, want 90", published.MinutesSpent)
	}
	if len(published.Platforms) != 1 || published.Platforms[0].ID != tiktok {
		t.Fatalf("platforms = %v", published.Platforms)
	}

	// 幂等：重复发布仍为 published，平台集不动
	again, err := f.svc.PublishContent(ctx, item.ID, &dto.PublishDTO{})
	if err != nil {
		t.Fatalf("second publish: %v", err)
	}
	if again.Status != "published" || len(again.Platforms) != 1 {
		t.Fatalf("second publish state: %s / %v", again.Status, again.Platforms)
	}
}

func TestContentPublishWithExplicitTime(t *testing.T) {
	f := newContentFixture(t)
	ctx := context.Background()

	item, err := f.svc.CreateContent(ctx, &dto.ContentBaseDTO{ContentTitle: strp("scheduled drop")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	published, err := f.svc.PublishContent(ctx, item.ID, &dto.PublishDTO{
		PublishTime: strp("2025-08-30T10:00:00Z"),
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	want := time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
	if published.PublishTime == nil || !published.PublishTime.Equal(want) {
		t.Fatalf("publish time = %v, want %v", published.PublishTime, want)
	}
}

func TestContentDeleteMissing(t *testing.T) {
	f := newContentFixture(t)

	if err := f.svc.DeleteContent(context.Background(), 99); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("err = %v, want ErrContentNotFound", err)
	}
}
