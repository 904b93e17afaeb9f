package tasks

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of household work. Assignee scoping is by convention only:
// queries are deployment-global, mirroring the single-household deployment
// model.
type Task struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"not null"`
	Description *string
	AssigneeID  *string `gorm:"type:uuid;index"`
	Priority    string  `gorm:"type:varchar(8);not null;default:medium"`
	DueAt       *time.Time
	Completed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type ListFilter struct {
	AssigneeID string
	Completed  *bool
}

type CreateTaskInput struct {
	Title       string
	Description *string
	AssigneeID  *string
	Priority    string
	DueAt       *time.Time
}

type UpdateTaskInput struct {
	ID          string
	Title       *string
	Description *string
	AssigneeID  *string
	Priority    *string
	DueAt       *time.Time
	Completed   *bool
}
