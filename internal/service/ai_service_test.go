package service

import (
	"context"
	"errors"
	"testing"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/llm"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"

	"gorm.io/gorm"
)

type fakeGateway struct {
	drafts []*llm.IdeaDraft
	object map[string]any
	err    error

	lastIdeas *llm.IdeasPayload
}

func (f *fakeGateway) GenerateStrategy(ctx context.Context, payload *llm.StrategyPayload) (map[string]any, error) {
	return f.object, f.err
}

func (f *fakeGateway) GenerateIdeas(ctx context.Context, payload *llm.IdeasPayload) ([]*llm.IdeaDraft, error) {
	f.lastIdeas = payload
	return f.drafts, f.err
}

func (f *fakeGateway) OptimizeContent(ctx context.Context, payload *llm.OptimizePayload) (map[string]any, error) {
	return f.object, f.err
}

func (f *fakeGateway) AnalyzePerformance(ctx context.Context, payload *llm.AnalyzePayload) (map[string]any, error) {
	return f.object, f.err
}

func (f *fakeGateway) GenerateWeeklyPlan(ctx context.Context, payload *llm.WeeklyPlanPayload) (map[string]any, error) {
	return f.object, f.err
}

type aiFixture struct {
	db      *gorm.DB
	gateway *fakeGateway
	svc     AIService
}

func newAIFixture(t *testing.T, gateway *fakeGateway) *aiFixture {
	db := newTestDB(t)
	profileRepo := repository.NewProfileRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	pillarRepo := repository.NewPillarRepository(db)
	contentRepo := repository.NewContentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	ideaSvc := NewIdeaService(repository.NewIdeaRepository(db))

	var g llm.Gateway
	if gateway != nil {
		g = gateway
	}
	return &aiFixture{
		db:      db,
		gateway: gateway,
		svc:     NewAIService(g, profileRepo, platformRepo, pillarRepo, contentRepo, analyticsRepo, ideaSvc),
	}
}

func TestAIUnconfiguredGateway(t *testing.T) {
	f := newAIFixture(t, nil)

	if _, err := f.svc.GenerateStrategy(context.Background()); !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("err = %v, want ErrGatewayUnavailable", err)
	}
}

func TestAIStrategyRequiresProfile(t *testing.T) {
	f := newAIFixture(t, &fakeGateway{object: map[string]any{"strategy_recommendations": "post daily"}})

	if _, err := f.svc.GenerateStrategy(context.Background()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestAIStrategy(t *testing.T) {
	f := newAIFixture(t, &fakeGateway{object: map[string]any{"strategy_recommendations": "post daily"}})
	ctx := context.Background()

	profileSvc := NewProfileService(repository.NewProfileRepository(f.db))
	if _, err := profileSvc.UpdateProfile(ctx, &dto.ProfileDTO{Mission: strp("grow")}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	result, err := f.svc.GenerateStrategy(ctx)
	if err != nil {
		t.Fatalf("strategy: %v", err)
	}
	if result["strategy_recommendations"] != "post daily" {
		t.Fatalf("result = %v", result)
	}
}

func TestAIGenerateIdeasPersists(t *testing.T) {
	f := newAIFixture(t, &fakeGateway{
		drafts: []*llm.IdeaDraft{
			{Title: "street style haul", Priority: "high"},
			{Title: "thrift flip", Priority: "low"},
		},
	})
	ctx := context.Background()

	pillarSvc := NewPillarService(repository.NewPillarRepository(f.db))
	pillar, err := pillarSvc.CreatePillar(ctx, &dto.PillarBaseDTO{
		PillarName:     strp("Fashion"),
		TargetAudience: strp("young professionals"),
	})
	if err != nil {
		t.Fatalf("seed pillar: %v", err)
	}

	ideas, err := f.svc.GenerateIdeas(ctx, &dto.GenerateIdeasDTO{PillarID: flexInt(int64(pillar.ID))})
	if err != nil {
		t.Fatalf("generate ideas: %v", err)
	}
	if len(ideas) != 2 {
		t.Fatalf("ideas = %d, want 2", len(ideas))
	}
	if f.gateway.lastIdeas == nil || f.gateway.lastIdeas.PillarName != "Fashion" {
		t.Fatalf("gateway payload = %+v", f.gateway.lastIdeas)
	}

	// 落库校验
	ideaSvc := NewIdeaService(repository.NewIdeaRepository(f.db))
	stored, err := ideaSvc.ListIdeas(ctx)
	if err != nil {
		t.Fatalf("list ideas: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored ideas = %d, want 2", len(stored))
	}
}

func TestAIGenerateIdeasMissingPillar(t *testing.T) {
	f := newAIFixture(t, &fakeGateway{})

	if _, err := f.svc.GenerateIdeas(context.Background(), &dto.GenerateIdeasDTO{PillarID: flexInt(77)}); !errors.Is(err, ErrPillarNotFound) {
		t.Fatalf("err = %v, want ErrPillarNotFound", err)
	}
}

func TestAIGatewayFailureMapsToBadGateway(t *testing.T) {
	f := newAIFixture(t, &fakeGateway{err: errors.New("upstream timeout")})
	ctx := context.Background()

	profileSvc := NewProfileService(repository.NewProfileRepository(f.db))
	if _, err := profileSvc.UpdateProfile(ctx, &dto.ProfileDTO{Mission: strp("grow")}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	if _, err := f.svc.GenerateStrategy(ctx); !errors.Is(err, ErrGateway) {
		t.Fatalf("err = %v, want ErrGateway", err)
	}
}

func TestAIOptimizeContentMissing(t *testing.T) {
	f := newAIFixture(t, &fakeGateway{})

	_, err := f.svc.OptimizeContent(context.Background(), &dto.OptimizeContentDTO{ContentID: flexInt(5)})
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("err = %v, want ErrContentNotFound", err)
	}
}
