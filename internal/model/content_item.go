package model

import (
	"time"
)

// ContentItem 内容条目，status 为制作流程状态，发布后携带表现计数
type ContentItem struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	ContentTitle    string     `gorm:"type:varchar(200);not null" json:"content_title"`
	ContentIdeaID   *uint64    `gorm:"index:idx_content_idea_id" json:"content_idea_id"`
	ContentPillarID *uint64    `gorm:"index:idx_content_pillar_id" json:"content_pillar_id"`
	Status          string     `gorm:"type:varchar(20);not null;default:'planning'" json:"status"` // planning, scripting, filming, editing, scheduled, published
	ContentType     *string    `gorm:"type:varchar(20)" json:"content_type"`                       // short_form, carousel, story, long_form, post
	ContentFormat   *string    `gorm:"type:varchar(20)" json:"content_format"`                     // fitcheck, grwm, cinematic, trendy, pov, vlog, head_talk
	PublishTime     *time.Time `json:"publish_time"`
	Intention       string     `gorm:"type:text" json:"intention"`
	Hook            string     `gorm:"type:text" json:"hook"`
	Caption         string     `gorm:"type:text" json:"caption"`
	Script          string     `gorm:"type:text" json:"script"`
	Music           string     `gorm:"type:text" json:"music"`
	Duration        *int64     `json:"duration"` // 秒
	MinutesSpent    *float64   `json:"minutes_spent"`
	ContentLink     string     `gorm:"type:varchar(500)" json:"content_link"`
	HashtagsUsed    string     `gorm:"type:text" json:"hashtags_used"`
	Notes           string     `gorm:"type:text" json:"notes"`
	Views           int64      `gorm:"not null;default:0" json:"views"`
	Likes           int64      `gorm:"not null;default:0" json:"likes"`
	Shares          int64      `gorm:"not null;default:0" json:"shares"`
	Comments        int64      `gorm:"not null;default:0" json:"comments"`
	Saves           int64      `gorm:"not null;default:0" json:"saves"`
	RetentionRate   float64    `gorm:"not null;default:0" json:"retention_rate"` // 完整观看比例 [0,100]
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// 关联关系，idea/pillar 为弱引用
	Platforms []Platform     `gorm:"many2many:content_platforms;joinForeignKey:ContentID;joinReferences:PlatformID" json:"-"`
	Idea      *ContentIdea   `gorm:"foreignKey:ContentIdeaID;references:ID" json:"-"`
	Pillar    *ContentPillar `gorm:"foreignKey:ContentPillarID;references:ID" json:"-"`
}

func (ContentItem) TableName() string {
	return "content_manager"
}
