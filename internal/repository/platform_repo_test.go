package repository

import (
	"context"
	"testing"
)

func TestPlatformGetByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlatformRepository(db)
	ctx := context.Background()

	seedPlatform(t, db, "TikTok")

	got, err := repo.GetPlatformByName(ctx, "TikTok")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if got == nil || got.PlatformName != "TikTok" {
		t.Fatalf("got = %v, want TikTok", got)
	}

	// 不存在返回 nil 而不是错误
	missing, err := repo.GetPlatformByName(ctx, "Threads")
	if err != nil {
		t.Fatalf("get missing by name: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing = %v, want nil", missing)
	}
}

func TestPlatformGetByIds(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlatformRepository(db)
	ctx := context.Background()

	tiktok := seedPlatform(t, db, "TikTok")
	ig := seedPlatform(t, db, "Instagram")

	platforms, err := repo.GetPlatformByIds(ctx, []uint64{tiktok.ID, ig.ID, 999})
	if err != nil {
		t.Fatalf("get by ids: %v", err)
	}
	if len(platforms) != 2 {
		t.Fatalf("platforms = %d, want 2 (unknown id dropped)", len(platforms))
	}
}
