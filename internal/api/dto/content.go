package dto

import "time"

// ContentBaseDTO 创建/更新内容条目。
// platform_ids 出现即整组替换平台关联，缺省则不触碰。
type ContentBaseDTO struct {
	ContentTitle    *string   `json:"content_title"`
	ContentIdeaID   FlexInt   `json:"content_idea_id"`
	ContentPillarID FlexInt   `json:"content_pillar_id"`
	Status          *string   `json:"status" binding:"omitempty,oneof=planning scripting filming editing scheduled published"`
	ContentType     *string   `json:"content_type" binding:"omitempty,oneof=short_form carousel story long_form post"`
	ContentFormat   *string   `json:"content_format" binding:"omitempty,oneof=fitcheck grwm cinematic trendy pov vlog head_talk"`
	PublishTime     *string   `json:"publish_time"`
	Intention       *string   `json:"intention"`
	Hook            *string   `json:"hook"`
	Caption         *string   `json:"caption"`
	Script          *string   `json:"script"`
	Music           *string   `json:"music"`
	Duration        FlexInt   `json:"duration"`
	MinutesSpent    FlexFloat `json:"minutes_spent"`
	ContentLink     *string   `json:"content_link"`
	HashtagsUsed    *string   `json:"hashtags_used"`
	Notes           *string   `json:"notes"`
	Views           FlexInt   `json:"views"`
	Likes           FlexInt   `json:"likes"`
	Shares          FlexInt   `json:"shares"`
	Comments        FlexInt   `json:"comments"`
	Saves           FlexInt   `json:"saves"`
	RetentionRate   FlexFloat `json:"retention_rate"`
	PlatformIDs     *FlexIDs  `json:"platform_ids"`
}

// PublishDTO 发布内容的请求体
type PublishDTO struct {
	PublishTime  *string   `json:"publish_time"`
	ContentLink  *string   `json:"content_link"`
	MinutesSpent FlexFloat `json:"minutes_spent"`
	Notes        *string   `json:"notes"`
	PlatformIDs  *FlexIDs  `json:"platform_ids"`
}

// PlatformSlimDTO 内容响应里的平台摘要
type PlatformSlimDTO struct {
	ID           uint64 `json:"id"`
	PlatformName string `json:"platform_name"`
}

// ContentItemDTO 内容条目响应
type ContentItemDTO struct {
	ID              uint64            `json:"id"`
	ContentTitle    string            `json:"content_title"`
	ContentIdeaID   *uint64           `json:"content_idea_id"`
	ContentPillarID *uint64           `json:"content_pillar_id"`
	Status          string            `json:"status"`
	ContentType     *string           `json:"content_type"`
	ContentFormat   *string           `json:"content_format"`
	PublishTime     *time.Time        `json:"publish_time"`
	Intention       string            `json:"intention"`
	Hook            string            `json:"hook"`
	Caption         string            `json:"caption"`
	Script          string            `json:"script"`
	Music           string            `json:"music"`
	Duration        *int64            `json:"duration"`
	MinutesSpent    *float64          `json:"minutes_spent"`
	ContentLink     string            `json:"content_link"`
	HashtagsUsed    string            `json:"hashtags_used"`
	Notes           string            `json:"notes"`
	Views           int64             `json:"views"`
	Likes           int64             `json:"likes"`
	Shares          int64             `json:"shares"`
	Comments        int64             `json:"comments"`
	Saves           int64             `json:"saves"`
	RetentionRate   float64           `json:"retention_rate"`
	Platforms       []PlatformSlimDTO `json:"platforms"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
