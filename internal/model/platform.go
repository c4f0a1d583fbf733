package model

import (
	"time"
)

type Platform struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	PlatformName     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_platform_name" json:"platform_name"`
	CurrentFollowers int       `gorm:"not null;default:0" json:"current_followers"`
	GoalFollowers    int       `gorm:"not null;default:0" json:"goal_followers"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Platform) TableName() string {
	return "platforms"
}
