package service

import (
	"context"
	"errors"
	"testing"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"
)

func newSubtaskFixture(t *testing.T) (SubtaskService, ContentService) {
	db := newTestDB(t)
	contentRepo := repository.NewContentRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	return NewSubtaskService(repository.NewSubtaskRepository(db), contentRepo),
		NewContentService(contentRepo, platformRepo)
}

func TestSubtaskLifecycle(t *testing.T) {
	subtaskSvc, contentSvc := newSubtaskFixture(t)
	ctx := context.Background()

	item, err := contentSvc.CreateContent(ctx, &dto.ContentBaseDTO{ContentTitle: strp("checklist owner")})
	if err != nil {
		t.Fatalf("seed content: %v", err)
	}

	subtask, err := subtaskSvc.CreateSubtask(ctx, item.ID, &dto.SubtaskBaseDTO{TaskTitle: strp("record voiceover")})
	if err != nil {
		t.Fatalf("create subtask: %v", err)
	}
	if subtask.Status != "pending" {
		t.Fatalf("status = %s, want pending", subtask.Status)
	}

	done := "completed"
	updated, err := subtaskSvc.UpdateSubtask(ctx, subtask.ID, &dto.SubtaskBaseDTO{Status: &done})
	if err != nil {
		t.Fatalf("update subtask: %v", err)
	}
	if updated.Status != "completed" {
		t.Fatalf("status = %s, want completed", updated.Status)
	}

	list, err := subtaskSvc.ListSubtasks(ctx, item.ID)
	if err != nil {
		t.Fatalf("list subtasks: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("subtasks = %d, want 1", len(list))
	}

	if err := subtaskSvc.DeleteSubtask(ctx, subtask.ID); err != nil {
		t.Fatalf("delete subtask: %v", err)
	}
	if err := subtaskSvc.DeleteSubtask(ctx, subtask.ID); !errors.Is(err, ErrSubtaskNotFound) {
		t.Fatalf("second delete err = %v, want ErrSubtaskNotFound", err)
	}
}

func TestSubtaskRequiresContent(t *testing.T) {
	subtaskSvc, _ := newSubtaskFixture(t)

	_, err := subtaskSvc.CreateSubtask(context.Background(), 12, &dto.SubtaskBaseDTO{TaskTitle: strp("orphan")})
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("err = %v, want ErrContentNotFound", err)
	}
}
