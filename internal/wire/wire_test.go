package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/patrickvicente/ai-content-strategist/internal/api/config"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/database"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubGateway struct{}

func (stubGateway) GenerateStrategy(ctx context.Context, payload *llm.StrategyPayload) (map[string]any, error) {
	return map[string]any{"strategy_recommendations": "post daily"}, nil
}

func (stubGateway) GenerateIdeas(ctx context.Context, payload *llm.IdeasPayload) ([]*llm.IdeaDraft, error) {
	return []*llm.IdeaDraft{{Title: "stubbed idea", ContentType: "post"}}, nil
}

func (stubGateway) OptimizeContent(ctx context.Context, payload *llm.OptimizePayload) (map[string]any, error) {
	return map[string]any{"hook": "optimized"}, nil
}

func (stubGateway) AnalyzePerformance(ctx context.Context, payload *llm.AnalyzePayload) (map[string]any, error) {
	return map[string]any{"analysis": "solid"}, nil
}

func (stubGateway) GenerateWeeklyPlan(ctx context.Context, payload *llm.WeeklyPlanPayload) (map[string]any, error) {
	return map[string]any{"monday": "film"}, nil
}

type envelope struct {
	Code    int             `json:"Code"`
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"Data"`
}

func newTestApp(t *testing.T) *ApplicationContainer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{}
	cfg.Dashboard.RecentLimit = 5
	cfg.Dashboard.AnalyticsDays = 7

	app, err := BuildApplication(db, stubGateway{}, cfg)
	if err != nil {
		t.Fatalf("build application: %v", err)
	}
	return app
}

func do(t *testing.T, app *ApplicationContainer, method, path, body string, wantStatus int) *envelope {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	if w.Code != wantStatus {
		t.Fatalf("%s %s status = %d, want %d, body %s", method, path, w.Code, wantStatus, w.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	return &env
}

func dataID(t *testing.T, env *envelope) uint64 {
	t.Helper()
	var obj map[string]any
	if err := json.Unmarshal(env.Data, &obj); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	id, ok := obj["id"].(float64)
	if !ok {
		t.Fatalf("data has no numeric id: %v", obj)
	}
	return uint64(id)
}

func TestEndToEndPublishFlow(t *testing.T) {
	app := newTestApp(t)

	env := do(t, app, http.MethodPost, "/api/platforms", `{"platform_name":"TikTok","current_followers":"1200"}`, http.StatusCreated)
	platformID := dataID(t, env)

	env = do(t, app, http.MethodPost, "/api/content-pillars", `{"pillar_name":"Fitness"}`, http.StatusCreated)
	pillarID := dataID(t, env)

	env = do(t, app, http.MethodPost, "/api/content-ideas",
		`{"title":"morning routine","content_pillar_id":"`+strconv.FormatUint(pillarID, 10)+`"}`, http.StatusCreated)
	ideaID := dataID(t, env)

	env = do(t, app, http.MethodPost, "/api/content-manager",
		`{"content_title":"morning routine ep1","content_idea_id":`+strconv.FormatUint(ideaID, 10)+
			`,"platform_ids":[`+strconv.FormatUint(platformID, 10)+`]}`, http.StatusCreated)
	contentID := dataID(t, env)

	env = do(t, app, http.MethodPost, "/api/content-manager/"+strconv.FormatUint(contentID, 10)+"/publish",
		`{"content_link":"https://tiktok.com/v/1"}`, http.StatusOK)

	var item struct {
		Status    string `json:"status"`
		Platforms []struct {
			ID uint64 `json:"id"`
		} `json:"platforms"`
	}
	if err := json.Unmarshal(env.Data, &item); err != nil {
		t.Fatalf("decode published item: %v", err)
	}
	if item.Status != "published" {
		t.Fatalf("status = %s, want published", item.Status)
	}
	if len(item.Platforms) != 1 || item.Platforms[0].ID != platformID {
		t.Fatalf("platforms = %v", item.Platforms)
	}

	env = do(t, app, http.MethodGet, "/api/dashboard/summary", "", http.StatusOK)
	var summary struct {
		TotalContentItems int64 `json:"total_content_items"`
		PublishedContent  int64 `json:"published_content"`
	}
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.TotalContentItems != 1 || summary.PublishedContent != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestEndToEndErrors(t *testing.T) {
	app := newTestApp(t)

	// 未知资源 404，业务码进响应体
	env := do(t, app, http.MethodGet, "/api/content-manager/99", "", http.StatusNotFound)
	if env.Code != 404 {
		t.Fatalf("code = %d, want 404", env.Code)
	}

	// 缺标题 400
	env = do(t, app, http.MethodPost, "/api/content-manager", `{}`, http.StatusBadRequest)
	if env.Code != 400 {
		t.Fatalf("code = %d, want 400", env.Code)
	}

	// 重名平台 400
	do(t, app, http.MethodPost, "/api/platforms", `{"platform_name":"TikTok"}`, http.StatusCreated)
	env = do(t, app, http.MethodPost, "/api/platforms", `{"platform_name":"TikTok"}`, http.StatusBadRequest)
	if env.Code != 400 {
		t.Fatalf("duplicate code = %d, want 400", env.Code)
	}
}

func TestEndToEndAIIdeas(t *testing.T) {
	app := newTestApp(t)

	env := do(t, app, http.MethodPost, "/api/content-pillars", `{"pillar_name":"Fashion"}`, http.StatusCreated)
	pillarID := dataID(t, env)

	env = do(t, app, http.MethodPost, "/api/ai/generate-ideas",
		`{"pillar_id":`+strconv.FormatUint(pillarID, 10)+`}`, http.StatusOK)

	var ideas []struct {
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &ideas); err != nil {
		t.Fatalf("decode ideas: %v", err)
	}
	if len(ideas) != 1 || ideas[0].Title != "stubbed idea" || ideas[0].Status != "pending" {
		t.Fatalf("ideas = %v", ideas)
	}
}
