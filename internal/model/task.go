package model

import (
	"time"
)

type Task struct {
	ID             uint64     `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"type:varchar(200);not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	ContentID      *uint64    `gorm:"index:idx_task_content_id" json:"content_id"`
	DueDate        *time.Time `json:"due_date"`
	Status         string     `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`   // pending, completed
	Priority       string     `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`  // low, medium, high
	EstimatedHours *float64   `json:"estimated_hours"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Content *ContentItem `gorm:"foreignKey:ContentID;references:ID" json:"-"`
}

func (Task) TableName() string {
	return "tasks"
}
