package service

import (
	"context"
	"errors"
	"testing"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"
)

func TestTaskCreateDefaults(t *testing.T) {
	svc := NewTaskService(repository.NewTaskRepository(newTestDB(t)))
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, &dto.TaskBaseDTO{
		Title:          strp("edit b-roll"),
		DueDate:        strp("2025-09-05"),
		EstimatedHours: flexFloat(2.5),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != "pending" || task.Priority != "medium" {
		t.Fatalf("defaults = %s/%s, want pending/medium", task.Status, task.Priority)
	}
	if task.DueDate == nil || task.DueDate.Day() != 5 {
		t.Fatalf("due date = %v", task.DueDate)
	}
	if task.EstimatedHours == nil || *task.EstimatedHours != 2.5 {
		t.Fatalf("estimated hours = %v", task.EstimatedHours)
	}
}

func TestTaskUpdateClearsDueDate(t *testing.T) {
	svc := NewTaskService(repository.NewTaskRepository(newTestDB(t)))
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, &dto.TaskBaseDTO{
		Title:   strp("film intro"),
		DueDate: strp("2025-09-05"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 空串清空截止时间，缺省保持
	updated, err := svc.UpdateTask(ctx, task.ID, &dto.TaskBaseDTO{DueDate: strp("")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DueDate != nil {
		t.Fatalf("due date = %v, want cleared", updated.DueDate)
	}

	updated, err = svc.UpdateTask(ctx, task.ID, &dto.TaskBaseDTO{Description: strp("use the new hook")})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if updated.Title != "film intro" {
		t.Fatalf("title lost: %q", updated.Title)
	}
}

func TestTaskRejectsBadStatus(t *testing.T) {
	svc := NewTaskService(repository.NewTaskRepository(newTestDB(t)))

	_, err := svc.CreateTask(context.Background(), &dto.TaskBaseDTO{
		Title:  strp("bad"),
		Status: strp("doing"),
	})
	if !errors.Is(err, ErrEnumInvalid) {
		t.Fatalf("err = %v, want ErrEnumInvalid", err)
	}
}
