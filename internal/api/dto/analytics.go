package dto

// AnalyticsBaseDTO 录入一条表现快照
type AnalyticsBaseDTO struct {
	ContentID      FlexInt   `json:"content_id"`
	PlatformID     FlexInt   `json:"platform_id"`
	DateRecorded   *string   `json:"date_recorded"`
	Views          FlexInt   `json:"views"`
	Likes          FlexInt   `json:"likes"`
	Shares         FlexInt   `json:"shares"`
	Comments       FlexInt   `json:"comments"`
	Saves          FlexInt   `json:"saves"`
	RetentionRate  FlexFloat `json:"retention_rate"`
	EngagementRate FlexFloat `json:"engagement_rate"`
}

// AnalyticsListDTO 查询参数
type AnalyticsListDTO struct {
	Days int `form:"days"`
}
