package repository

import (
	"context"
	"testing"
	"time"

	"github.com/patrickvicente/ai-content-strategist/internal/model"
)

func TestAnalyticsSaveOrUpdateOverwrites(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	day := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	first := &model.AnalyticsRecord{
		ContentID:    1,
		PlatformID:   2,
		DateRecorded: day,
		Views:        100,
		Likes:        10,
	}
	if err := repo.SaveOrUpdateRecord(ctx, first); err != nil {
		t.Fatalf("save record: %v", err)
	}

	second := &model.AnalyticsRecord{
		ContentID:    1,
		PlatformID:   2,
		DateRecorded: day,
		Views:        250,
		Likes:        30,
	}
	if err := repo.SaveOrUpdateRecord(ctx, second); err != nil {
		t.Fatalf("upsert record: %v", err)
	}

	records, err := repo.ListRecordsSince(ctx, day.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1 (same content+platform+date must overwrite)", len(records))
	}
	if records[0].Views != 250 || records[0].Likes != 30 {
		t.Fatalf("record counters = %d/%d, want 250/30", records[0].Views, records[0].Likes)
	}
}

func TestAnalyticsListRecordsSince(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	now := time.Now()
	old := &model.AnalyticsRecord{ContentID: 1, PlatformID: 1, DateRecorded: now.AddDate(0, 0, -30)}
	recent := &model.AnalyticsRecord{ContentID: 1, PlatformID: 2, DateRecorded: now.AddDate(0, 0, -2)}
	for _, r := range []*model.AnalyticsRecord{old, recent} {
		if err := repo.CreateRecord(ctx, r); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	records, err := repo.ListRecordsSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 1 || records[0].PlatformID != 2 {
		t.Fatalf("records since 7d = %v, want only the recent one", records)
	}
}

func TestAnalyticsListRecordsByPlatform(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	day := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	for i, pid := range []uint64{1, 1, 2} {
		record := &model.AnalyticsRecord{
			ContentID:    uint64(i + 1),
			PlatformID:   pid,
			DateRecorded: day,
		}
		if err := repo.CreateRecord(ctx, record); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	records, err := repo.ListRecordsByPlatform(ctx, 1)
	if err != nil {
		t.Fatalf("list by platform: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records for platform 1 = %d, want 2", len(records))
	}
}
