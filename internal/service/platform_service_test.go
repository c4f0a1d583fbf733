package service

import (
	"context"
	"errors"
	"testing"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"
)

func TestPlatformCreateRequiresName(t *testing.T) {
	svc := NewPlatformService(repository.NewPlatformRepository(newTestDB(t)))
	ctx := context.Background()

	if _, err := svc.CreatePlatform(ctx, &dto.PlatformBaseDTO{}); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("err = %v, want ErrParamInvalid", err)
	}
	if _, err := svc.CreatePlatform(ctx, &dto.PlatformBaseDTO{PlatformName: strp("   ")}); !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("blank name err = %v, want ErrParamInvalid", err)
	}
}

func TestPlatformCreateRejectsDuplicateName(t *testing.T) {
	svc := NewPlatformService(repository.NewPlatformRepository(newTestDB(t)))
	ctx := context.Background()

	if _, err := svc.CreatePlatform(ctx, &dto.PlatformBaseDTO{PlatformName: strp("TikTok")}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreatePlatform(ctx, &dto.PlatformBaseDTO{PlatformName: strp("TikTok")}); !errors.Is(err, ErrPlatformNameExist) {
		t.Fatalf("duplicate err = %v, want ErrPlatformNameExist", err)
	}
}

func TestPlatformUpdatePartial(t *testing.T) {
	svc := NewPlatformService(repository.NewPlatformRepository(newTestDB(t)))
	ctx := context.Background()

	created, err := svc.CreatePlatform(ctx, &dto.PlatformBaseDTO{
		PlatformName:     strp("Instagram"),
		CurrentFollowers: flexInt(1200),
		GoalFollowers:    flexInt(10000),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 只改 current_followers，其余保持
	updated, err := svc.UpdatePlatform(ctx, created.ID, &dto.PlatformBaseDTO{
		CurrentFollowers: flexInt(1500),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CurrentFollowers != 1500 {
		t.Fatalf("current = %d, want 1500", updated.CurrentFollowers)
	}
	if updated.PlatformName != "Instagram" || updated.GoalFollowers != 10000 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestPlatformGetMissing(t *testing.T) {
	svc := NewPlatformService(repository.NewPlatformRepository(newTestDB(t)))

	if _, err := svc.GetPlatform(context.Background(), 42); !errors.Is(err, ErrPlatformNotFound) {
		t.Fatalf("err = %v, want ErrPlatformNotFound", err)
	}
}
