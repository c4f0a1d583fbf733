package llm

import (
	"context"
	log "log/slog"
)

func (g *openaiGateway) GenerateStrategy(ctx context.Context, payload *StrategyPayload) (map[string]any, error) {
	userPrompt, err := marshalPayload(payload)
	if err != nil {
		return nil, err
	}
	raw, err := g.fetchModel(ctx, g.strategyPrompt, userPrompt, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return nil, err
	}
	return ParseObject(raw, "strategy_text"), nil
}

func (g *openaiGateway) GenerateIdeas(ctx context.Context, payload *IdeasPayload) ([]*IdeaDraft, error) {
	userPrompt, err := marshalPayload(payload)
	if err != nil {
		return nil, err
	}
	raw, err := g.fetchModel(ctx, g.ideasPrompt, userPrompt, 0.8)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return nil, err
	}
	return ParseIdeaDrafts(raw), nil
}

func (g *openaiGateway) OptimizeContent(ctx context.Context, payload *OptimizePayload) (map[string]any, error) {
	userPrompt, err := marshalPayload(payload)
	if err != nil {
		return nil, err
	}
	raw, err := g.fetchModel(ctx, g.optimizePrompt, userPrompt, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return nil, err
	}
	return ParseObject(raw, "optimized_content"), nil
}

func (g *openaiGateway) AnalyzePerformance(ctx context.Context, payload *AnalyzePayload) (map[string]any, error) {
	userPrompt, err := marshalPayload(payload)
	if err != nil {
		return nil, err
	}
	raw, err := g.fetchModel(ctx, g.analyzePrompt, userPrompt, 0.5)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return nil, err
	}
	return ParseObject(raw, "analysis"), nil
}

func (g *openaiGateway) GenerateWeeklyPlan(ctx context.Context, payload *WeeklyPlanPayload) (map[string]any, error) {
	userPrompt, err := marshalPayload(payload)
	if err != nil {
		return nil, err
	}
	raw, err := g.fetchModel(ctx, g.weeklyPlanPrompt, userPrompt, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return nil, err
	}
	return ParseObject(raw, "plan"), nil
}
