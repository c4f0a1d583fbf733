package service

import (
	"context"
	"testing"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"
)

func TestProfileLazySingleton(t *testing.T) {
	svc := NewProfileService(repository.NewProfileRepository(newTestDB(t)))
	ctx := context.Background()

	first, err := svc.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("lazy create did not assign an id")
	}

	second, err := svc.GetProfile(ctx)
	if err != nil {
		t.Fatalf("get profile again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second id = %d, want %d (must stay a single row)", second.ID, first.ID)
	}
}

func TestProfileUpdatePartial(t *testing.T) {
	svc := NewProfileService(repository.NewProfileRepository(newTestDB(t)))
	ctx := context.Background()

	if _, err := svc.UpdateProfile(ctx, &dto.ProfileDTO{
		Mission: strp("document the journey"),
		Niche:   strp("fitness"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, &dto.ProfileDTO{Goals: strp("10k followers")})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if updated.Mission != "document the journey" || updated.Niche != "fitness" {
		t.Fatalf("prior fields lost: %+v", updated)
	}
	if updated.Goals != "10k followers" {
		t.Fatalf("goals = %q", updated.Goals)
	}
}
