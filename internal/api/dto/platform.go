package dto

// PlatformBaseDTO 创建/更新平台，更新时缺省字段保持原值
type PlatformBaseDTO struct {
	PlatformName     *string  `json:"platform_name"`
	CurrentFollowers FlexInt  `json:"current_followers"`
	GoalFollowers    FlexInt  `json:"goal_followers"`
}
