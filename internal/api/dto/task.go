package dto

// TaskBaseDTO 创建/更新任务
type TaskBaseDTO struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	ContentID      FlexInt   `json:"content_id"`
	DueDate        *string   `json:"due_date"`
	Status         *string   `json:"status" binding:"omitempty,oneof=pending completed"`
	Priority       *string   `json:"priority" binding:"omitempty,oneof=low medium high"`
	EstimatedHours FlexFloat `json:"estimated_hours"`
}

// SubtaskBaseDTO 创建/更新内容子任务
type SubtaskBaseDTO struct {
	TaskTitle *string `json:"task_title"`
	Status    *string `json:"status" binding:"omitempty,oneof=pending completed"`
	DueDate   *string `json:"due_date"`
}
