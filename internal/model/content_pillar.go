package model

import (
	"time"
)

type ContentPillar struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	PillarName       string    `gorm:"type:varchar(100);not null" json:"pillar_name"`
	Description      string    `gorm:"type:text" json:"description"`
	Keywords         string    `gorm:"type:text" json:"keywords"` // 逗号分隔的关键词
	TargetAudience   string    `gorm:"type:text" json:"target_audience"`
	ContentFrequency string    `gorm:"type:varchar(50)" json:"content_frequency"`
	Goals            string    `gorm:"type:text" json:"goals"`
	Color            string    `gorm:"type:varchar(7);default:'#3B82F6'" json:"color"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (ContentPillar) TableName() string {
	return "content_pillars"
}
