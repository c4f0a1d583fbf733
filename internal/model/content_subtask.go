package model

import (
	"time"
)

// ContentSubtask 内容条目下的检查项
type ContentSubtask struct {
	ID        uint64     `gorm:"primaryKey" json:"id"`
	ContentID uint64     `gorm:"not null;index:idx_subtask_content_id" json:"content_id"`
	TaskTitle string     `gorm:"type:varchar(200);not null" json:"task_title"`
	Status    string     `gorm:"type:varchar(10);not null;default:'pending'" json:"status"` // pending, completed
	DueDate   *time.Time `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (ContentSubtask) TableName() string {
	return "content_subtasks"
}
