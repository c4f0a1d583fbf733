package llm

import (
	"context"
	log "log/slog"
	"time"

	"github.com/patrickvicente/ai-content-strategist/internal/api/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Gateway AI 生成网关，所有调用为同步请求并受超时约束
type Gateway interface {
	GenerateStrategy(ctx context.Context, payload *StrategyPayload) (map[string]any, error)
	GenerateIdeas(ctx context.Context, payload *IdeasPayload) ([]*IdeaDraft, error)
	OptimizeContent(ctx context.Context, payload *OptimizePayload) (map[string]any, error)
	AnalyzePerformance(ctx context.Context, payload *AnalyzePayload) (map[string]any, error)
	GenerateWeeklyPlan(ctx context.Context, payload *WeeklyPlanPayload) (map[string]any, error)
}

type openaiGateway struct {
	client  llms.Model
	model   string
	timeout time.Duration

	strategyPrompt   string
	ideasPrompt      string
	optimizePrompt   string
	analyzePrompt    string
	weeklyPlanPrompt string
}

func NewGateway(cfg *config.LLMConfig) (Gateway, error) {
	client, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return nil, err
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &openaiGateway{
		client:  client,
		model:   cfg.Model,
		timeout: timeout,

		// 从prompt txt文件中读取prompt
		strategyPrompt:   readPrompt(cfg.PromptsPath.Strategy, "./prompts/strategy.txt"),
		ideasPrompt:      readPrompt(cfg.PromptsPath.Ideas, "./prompts/ideas.txt"),
		optimizePrompt:   readPrompt(cfg.PromptsPath.Optimize, "./prompts/optimize.txt"),
		analyzePrompt:    readPrompt(cfg.PromptsPath.Analyze, "./prompts/analyze.txt"),
		weeklyPlanPrompt: readPrompt(cfg.PromptsPath.WeeklyPlan, "./prompts/weekly-plan.txt"),
	}, nil
}
