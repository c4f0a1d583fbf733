package model

import (
	"time"
)

// AnalyticsRecord 按天记录的内容表现快照
type AnalyticsRecord struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	ContentID      uint64    `gorm:"not null;index:idx_content_platform_date,unique" json:"content_id"`
	PlatformID     uint64    `gorm:"not null;index:idx_content_platform_date,unique" json:"platform_id"`
	DateRecorded   time.Time `gorm:"not null;index:idx_content_platform_date,unique;column:date_recorded" json:"date_recorded"`
	Views          int64     `gorm:"not null;default:0" json:"views"`
	Likes          int64     `gorm:"not null;default:0" json:"likes"`
	Shares         int64     `gorm:"not null;default:0" json:"shares"`
	Comments       int64     `gorm:"not null;default:0" json:"comments"`
	Saves          int64     `gorm:"not null;default:0" json:"saves"`
	RetentionRate  float64   `gorm:"not null;default:0" json:"retention_rate"`
	EngagementRate float64   `gorm:"not null;default:0" json:"engagement_rate"`
	CreatedAt      time.Time `json:"created_at"`
}

func (AnalyticsRecord) TableName() string {
	return "analytics"
}
