package service

import (
	"context"
	"errors"
	"testing"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/llm"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"
)

func TestIdeaCreateDefaults(t *testing.T) {
	svc := NewIdeaService(repository.NewIdeaRepository(newTestDB(t)))
	ctx := context.Background()

	idea, err := svc.CreateIdea(ctx, &dto.IdeaBaseDTO{Title: strp("morning routine pov")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if idea.Status != "pending" || idea.Priority != "medium" {
		t.Fatalf("defaults = %s/%s, want pending/medium", idea.Status, idea.Priority)
	}
}

func TestIdeaCreateRejectsBadEnum(t *testing.T) {
	svc := NewIdeaService(repository.NewIdeaRepository(newTestDB(t)))
	ctx := context.Background()

	_, err := svc.CreateIdea(ctx, &dto.IdeaBaseDTO{
		Title:    strp("bad priority"),
		Priority: strp("urgent"),
	})
	if !errors.Is(err, ErrEnumInvalid) {
		t.Fatalf("err = %v, want ErrEnumInvalid", err)
	}
}

func TestIdeaUpdateMissing(t *testing.T) {
	svc := NewIdeaService(repository.NewIdeaRepository(newTestDB(t)))

	_, err := svc.UpdateIdea(context.Background(), 7, &dto.IdeaBaseDTO{Title: strp("x")})
	if !errors.Is(err, ErrIdeaNotFound) {
		t.Fatalf("err = %v, want ErrIdeaNotFound", err)
	}
}

func TestIdeaCreateFromDrafts(t *testing.T) {
	svc := NewIdeaService(repository.NewIdeaRepository(newTestDB(t)))
	ctx := context.Background()

	drafts := []*llm.IdeaDraft{
		{Title: "5 outfit transitions", Description: "fast cuts", Priority: "high"},
		{Title: "", Description: "no title, must be skipped"},
		{Title: "day in the life", Priority: "someday"},
	}

	ideas, err := svc.CreateIdeasFromDrafts(ctx, 3, drafts)
	if err != nil {
		t.Fatalf("create from drafts: %v", err)
	}
	if len(ideas) != 2 {
		t.Fatalf("ideas = %d, want 2", len(ideas))
	}
	if ideas[0].Priority != "high" {
		t.Fatalf("priority = %s, want high", ideas[0].Priority)
	}
	// 非法优先级回退 medium
	if ideas[1].Priority != "medium" {
		t.Fatalf("fallback priority = %s, want medium", ideas[1].Priority)
	}
	for _, idea := range ideas {
		if idea.ContentPillarID == nil || *idea.ContentPillarID != 3 {
			t.Fatalf("pillar id = %v, want 3", idea.ContentPillarID)
		}
		if idea.Status != "pending" {
			t.Fatalf("status = %s, want pending", idea.Status)
		}
	}
}
