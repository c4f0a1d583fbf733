package model

import (
	"time"
)

// Profile 单行记录，首次读取或写入时惰性创建
type Profile struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Mission        string    `gorm:"type:text" json:"mission"`
	Goals          string    `gorm:"type:text" json:"goals"`
	Vision         string    `gorm:"type:text" json:"vision"`
	Niche          string    `gorm:"type:varchar(200)" json:"niche"`
	TargetAudience string    `gorm:"type:text" json:"target_audience"`
	Stories        string    `gorm:"type:text" json:"stories"`
	Motivation     string    `gorm:"type:text" json:"motivation"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profile"
}
