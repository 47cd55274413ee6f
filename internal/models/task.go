package model

import (
	"task-tracker.com/td/internal/constants"
)

// DefaultPriority applies when a task is added without an explicit priority.
const DefaultPriority = 3

type Task struct {
	ID          int64                `gorm:"column:id;primaryKey;autoIncrement"`
	Description string               `gorm:"column:task;not null"`
	Status      constants.TaskStatus `gorm:"column:status;not null"`
	Priority    int                  `gorm:"column:priority;not null"`
	CreatedAt   int64                `gorm:"column:created_at;not null;autoCreateTime:false"`
	DueAt       *int64               `gorm:"column:due_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// ListScope selects which tasks a listing returns.
type ListScope int

const (
	ScopeActive ListScope = iota
	ScopeCompleted
	ScopeAll
)

// PriorityGlyph renders a priority as the single marker shown in listings.
func PriorityGlyph(priority int) string {
	switch priority {
	case 1:
		return "."
	case 2:
		return "-"
	case 3:
		return "~"
	case 4:
		return "!"
	default:
		return "!!!"
	}
}
