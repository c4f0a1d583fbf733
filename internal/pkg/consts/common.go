package consts

const (
	IdeaStatusPending  = "pending"
	IdeaStatusApproved = "approved"
	IdeaStatusRejected = "rejected"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	ContentStatusPlanning  = "planning"
	ContentStatusScripting = "scripting"
	ContentStatusFilming   = "filming"
	ContentStatusEditing   = "editing"
	ContentStatusScheduled = "scheduled"
	ContentStatusPublished = "published"
)

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

const (
	DefaultPillarColor = "#3B82F6"
)

// 各实体的闭合枚举集合，服务层写入前校验
var (
	SetIdeaStatus = map[string]bool{
		IdeaStatusPending:  true,
		IdeaStatusApproved: true,
		IdeaStatusRejected: true,
	}

	SetPriority = map[string]bool{
		PriorityLow:    true,
		PriorityMedium: true,
		PriorityHigh:   true,
	}

	SetContentStatus = map[string]bool{
		ContentStatusPlanning:  true,
		ContentStatusScripting: true,
		ContentStatusFilming:   true,
		ContentStatusEditing:   true,
		ContentStatusScheduled: true,
		ContentStatusPublished: true,
	}

	SetContentType = map[string]bool{
		"short_form": true,
		"carousel":   true,
		"story":      true,
		"long_form":  true,
		"post":       true,
	}

	SetContentFormat = map[string]bool{
		"fitcheck":  true,
		"grwm":      true,
		"cinematic": true,
		"trendy":    true,
		"pov":       true,
		"vlog":      true,
		"head_talk": true,
	}

	SetTaskStatus = map[string]bool{
		TaskStatusPending:   true,
		TaskStatusCompleted: true,
	}
)
