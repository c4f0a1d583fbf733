package model

import (
	"time"
)

type ContentIdea struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(200);not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	ContentPillarID *uint64   `gorm:"index:idx_idea_pillar_id" json:"content_pillar_id"`
	InspirationLink string    `gorm:"type:varchar(500)" json:"inspiration_link"`
	Priority        string    `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"` // low, medium, high
	Status          string    `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`  // pending, approved, rejected
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// 弱引用，支柱被删除后该关联为空
	Pillar *ContentPillar `gorm:"foreignKey:ContentPillarID;references:ID" json:"-"`
}

func (ContentIdea) TableName() string {
	return "content_ideas"
}
