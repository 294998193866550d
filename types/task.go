package types

import "time"

// TaskStatus enumerates the task workflow states.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "ToDo"
	TaskInProgress TaskStatus = "InProgress"
	TaskCompleted  TaskStatus = "Completed"
	TaskOnHold     TaskStatus = "OnHold"
)

// TaskPriority enumerates task urgency levels.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// Task is a unit of work inside a project, optionally assigned to a user.
type Task struct {
	ID          string       `json:"id" yaml:"id"`
	Code        string       `json:"code" yaml:"code"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Project     ProjectRef   `json:"project" yaml:"project"`
	Assignee    UserRef      `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Status      TaskStatus   `json:"status" yaml:"status"`
	Priority    TaskPriority `json:"priority" yaml:"priority"`
	DueDate     time.Time    `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Timestamps  `yaml:",inline"`
}

func (t Task) RecordID() string { return t.ID }
