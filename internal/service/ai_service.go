package service

import (
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/patrickvicente/ai-content-strategist/internal/api/dto"
	"github.com/patrickvicente/ai-content-strategist/internal/model"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/consts"
	"github.com/patrickvicente/ai-content-strategist/internal/pkg/llm"
	"github.com/patrickvicente/ai-content-strategist/internal/repository"

	"gorm.io/gorm"
)

// maxPerformanceSamples 喂给模型的表现样本上限，避免上下文过长
const maxPerformanceSamples = 10

type AIService interface {
	GenerateStrategy(ctx context.Context) (map[string]any, error)
	GenerateIdeas(ctx context.Context, ideasDTO *dto.GenerateIdeasDTO) ([]*model.ContentIdea, error)
	OptimizeContent(ctx context.Context, optimizeDTO *dto.OptimizeContentDTO) (map[string]any, error)
	AnalyzePerformance(ctx context.Context) (map[string]any, error)
	GenerateWeeklyPlan(ctx context.Context) (map[string]any, error)
}

type aiServiceImpl struct {
	gateway       llm.Gateway
	profileRepo   repository.ProfileRepo
	platformRepo  repository.PlatformRepo
	pillarRepo    repository.PillarRepo
	contentRepo   repository.ContentRepo
	analyticsRepo repository.AnalyticsRepo
	ideaService   IdeaService
}

func NewAIService(
	gateway llm.Gateway,
	profileRepo repository.ProfileRepo,
	platformRepo repository.PlatformRepo,
	pillarRepo repository.PillarRepo,
	contentRepo repository.ContentRepo,
	analyticsRepo repository.AnalyticsRepo,
	ideaService IdeaService,
) AIService {
	return &aiServiceImpl{
		gateway:       gateway,
		profileRepo:   profileRepo,
		platformRepo:  platformRepo,
		pillarRepo:    pillarRepo,
		contentRepo:   contentRepo,
		analyticsRepo: analyticsRepo,
		ideaService:   ideaService,
	}
}

// GenerateStrategy 基于个人档案、平台与近期表现生成整体策略
func (s *aiServiceImpl) GenerateStrategy(ctx context.Context) (map[string]any, error) {
	if s.gateway == nil {
		return nil, ErrGatewayUnavailable
	}

	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询个人档案失败", "err", err)
		return nil, UnExpectedError
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询平台列表失败", "err", err)
		return nil, UnExpectedError
	}

	analytics, err := s.recentPerformance(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.gateway.GenerateStrategy(ctx, &llm.StrategyPayload{
		Profile:   profile,
		Platforms: platforms,
		Analytics: analytics,
	})
	if err != nil {
		log.ErrorContext(ctx, "AI生成策略失败", "err", err)
		return nil, ErrGateway
	}
	return result, nil
}

// GenerateIdeas 按指定支柱批量生成灵感草稿并落库，全部成功或整体失败
func (s *aiServiceImpl) GenerateIdeas(ctx context.Context, ideasDTO *dto.GenerateIdeasDTO) ([]*model.ContentIdea, error) {
	if s.gateway == nil {
		return nil, ErrGatewayUnavailable
	}

	pillarID := ideasDTO.PillarID.Uint64()
	if pillarID == nil {
		return nil, ErrParamInvalid
	}
	pillar, err := s.pillarRepo.GetPillar(ctx, *pillarID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPillarNotFound
		}
		log.ErrorContext(ctx, "查询内容支柱失败", "id", *pillarID, "err", err)
		return nil, UnExpectedError
	}

	performance, err := s.recentPerformance(ctx)
	if err != nil {
		return nil, err
	}

	drafts, err := s.gateway.GenerateIdeas(ctx, &llm.IdeasPayload{
		PillarName:        pillar.PillarName,
		TargetAudience:    pillar.TargetAudience,
		RecentPerformance: performance,
	})
	if err != nil {
		log.ErrorContext(ctx, "AI生成灵感失败", "pillar", pillar.PillarName, "err", err)
		return nil, ErrGateway
	}

	return s.ideaService.CreateIdeasFromDrafts(ctx, *pillarID, drafts)
}

// OptimizeContent 结合平台历史表现给出既有内容的优化建议
func (s *aiServiceImpl) OptimizeContent(ctx context.Context, optimizeDTO *dto.OptimizeContentDTO) (map[string]any, error) {
	if s.gateway == nil {
		return nil, ErrGatewayUnavailable
	}

	contentID := optimizeDTO.ContentID.Uint64()
	if contentID == nil {
		return nil, ErrParamInvalid
	}
	item, err := s.contentRepo.GetContent(ctx, *contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		log.ErrorContext(ctx, "查询内容失败", "id", *contentID, "err", err)
		return nil, UnExpectedError
	}

	platformName := ""
	if optimizeDTO.Platform != nil {
		platformName = strings.TrimSpace(*optimizeDTO.Platform)
	}

	var analytics []*model.AnalyticsRecord
	if platformName != "" {
		platform, err := s.platformRepo.GetPlatformByName(ctx, platformName)
		if err != nil {
			log.ErrorContext(ctx, "查询平台失败", "name", platformName, "err", err)
			return nil, UnExpectedError
		}
		if platform != nil {
			analytics, err = s.analyticsRepo.ListRecordsByPlatform(ctx, platform.ID)
			if err != nil {
				log.ErrorContext(ctx, "查询平台表现失败", "platform_id", platform.ID, "err", err)
				return nil, UnExpectedError
			}
			if len(analytics) > maxPerformanceSamples {
				analytics = analytics[:maxPerformanceSamples]
			}
		}
	}

	result, err := s.gateway.OptimizeContent(ctx, &llm.OptimizePayload{
		Content:   item,
		Platform:  platformName,
		Analytics: analytics,
	})
	if err != nil {
		log.ErrorContext(ctx, "AI优化内容失败", "id", *contentID, "err", err)
		return nil, ErrGateway
	}
	return result, nil
}

// AnalyzePerformance 汇总已发布内容的表现并请求分析
func (s *aiServiceImpl) AnalyzePerformance(ctx context.Context) (map[string]any, error) {
	if s.gateway == nil {
		return nil, ErrGatewayUnavailable
	}

	items, err := s.contentRepo.ListContentsByStatus(ctx, consts.ContentStatusPublished)
	if err != nil {
		log.ErrorContext(ctx, "查询已发布内容失败", "err", err)
		return nil, UnExpectedError
	}

	contents := make([]map[string]any, 0, len(items))
	for _, item := range items {
		contents = append(contents, contentPerformance(item))
		if len(contents) >= maxPerformanceSamples {
			break
		}
	}

	platformNames, err := s.platformNames(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.gateway.AnalyzePerformance(ctx, &llm.AnalyzePayload{
		Contents:  contents,
		Platforms: platformNames,
	})
	if err != nil {
		log.ErrorContext(ctx, "AI分析表现失败", "err", err)
		return nil, ErrGateway
	}
	return result, nil
}

// GenerateWeeklyPlan 基于支柱、平台与档案目标生成一周内容排期
func (s *aiServiceImpl) GenerateWeeklyPlan(ctx context.Context) (map[string]any, error) {
	if s.gateway == nil {
		return nil, ErrGatewayUnavailable
	}

	pillars, err := s.pillarRepo.ListPillars(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询内容支柱列表失败", "err", err)
		return nil, UnExpectedError
	}

	platformNames, err := s.platformNames(ctx)
	if err != nil {
		return nil, err
	}

	goals := ""
	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询个人档案失败", "err", err)
		return nil, UnExpectedError
	}
	if profile != nil {
		goals = profile.Goals
	}

	result, err := s.gateway.GenerateWeeklyPlan(ctx, &llm.WeeklyPlanPayload{
		Pillars:   pillars,
		Platforms: platformNames,
		Goals:     goals,
	})
	if err != nil {
		log.ErrorContext(ctx, "AI生成周计划失败", "err", err)
		return nil, ErrGateway
	}
	return result, nil
}

func (s *aiServiceImpl) platformNames(ctx context.Context) ([]string, error) {
	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		log.ErrorContext(ctx, "查询平台列表失败", "err", err)
		return nil, UnExpectedError
	}
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, p.PlatformName)
	}
	return names, nil
}

// recentPerformance 已发布内容的表现摘要，最多取 maxPerformanceSamples 条
func (s *aiServiceImpl) recentPerformance(ctx context.Context) ([]map[string]any, error) {
	items, err := s.contentRepo.ListContentsByStatus(ctx, consts.ContentStatusPublished)
	if err != nil {
		log.ErrorContext(ctx, "查询已发布内容失败", "err", err)
		return nil, UnExpectedError
	}
	result := make([]map[string]any, 0, len(items))
	for _, item := range items {
		result = append(result, contentPerformance(item))
		if len(result) >= maxPerformanceSamples {
			break
		}
	}
	return result, nil
}

func contentPerformance(item *model.ContentItem) map[string]any {
	return map[string]any{
		"title":           item.ContentTitle,
		"views":           item.Views,
		"likes":           item.Likes,
		"comments":        item.Comments,
		"shares":          item.Shares,
		"saves":           item.Saves,
		"retention_rate":  item.RetentionRate,
		"engagement_rate": engagementRate(item.Views, item.Likes, item.Comments, item.Shares),
	}
}
