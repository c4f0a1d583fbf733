package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// LLMConfig AI 网关配置，Timeout 为单次调用超时（秒）
type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	Model       string           `mapstructure:"model"`
	ApiKey      string           `mapstructure:"api_key"`
	Timeout     int              `mapstructure:"timeout"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	Strategy   string `mapstructure:"strategy"`
	Ideas      string `mapstructure:"ideas"`
	Optimize   string `mapstructure:"optimize"`
	Analyze    string `mapstructure:"analyze"`
	WeeklyPlan string `mapstructure:"weekly_plan"`
}

// DashboardConfig 仪表盘汇总配置
type DashboardConfig struct {
	RecentLimit   int `mapstructure:"recent_limit"`
	AnalyticsDays int `mapstructure:"analytics_days"`
}
