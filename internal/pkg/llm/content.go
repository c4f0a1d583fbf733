package llm

// 各类生成请求的上下文载荷，整体序列化为用户消息

type StrategyPayload struct {
	Profile   any `json:"profile"`
	Platforms any `json:"platforms"`
	Analytics any `json:"recent_analytics"`
}

type IdeasPayload struct {
	PillarName        string `json:"pillar_name"`
	TargetAudience    string `json:"target_audience"`
	RecentPerformance any    `json:"recent_performance"`
}

type OptimizePayload struct {
	Content   any    `json:"content"`
	Platform  string `json:"platform"`
	Analytics any    `json:"platform_analytics"`
}

type AnalyzePayload struct {
	Contents  any      `json:"contents"`
	Platforms []string `json:"platforms"`
}

type WeeklyPlanPayload struct {
	Pillars   any      `json:"pillars"`
	Platforms []string `json:"platforms"`
	Goals     string   `json:"goals"`
}

// IdeaDraft 模型返回的灵感草稿
type IdeaDraft struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	ContentType         string `json:"content_type"`
	Hook                string `json:"hook"`
	Priority            string `json:"priority"`
	EstimatedEngagement string `json:"estimated_engagement"`
}
