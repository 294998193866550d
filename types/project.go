package types

import "time"

// ProjectStatus enumerates the project lifecycle states. Transitions are
// not guarded: any status may be set to any other via the update path.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectInactive  ProjectStatus = "Inactive"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectOnHold    ProjectStatus = "OnHold"
)

// Activity is a dated log entry on a project.
type Activity struct {
	ID     string    `json:"id" yaml:"id"`
	Text   string    `json:"text" yaml:"text"`
	Author UserRef   `json:"author" yaml:"author"`
	Date   time.Time `json:"date" yaml:"date"`
}

// Project is a client engagement with a manager, a team and an activity log.
type Project struct {
	ID             string        `json:"id" yaml:"id"`
	Code           string        `json:"code" yaml:"code"`
	Name           string        `json:"name" yaml:"name"`
	Description    string        `json:"description,omitempty" yaml:"description,omitempty"`
	Client         ClientRef     `json:"client" yaml:"client"`
	ProjectManager UserRef       `json:"projectManager,omitempty" yaml:"projectManager,omitempty"`
	Status         ProjectStatus `json:"status" yaml:"status"`
	StartDate      time.Time     `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	DueDate        time.Time     `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Budget         float64       `json:"budget,omitempty" yaml:"budget,omitempty"`
	Team           []UserRef     `json:"team,omitempty" yaml:"team,omitempty"`
	Activities     []Activity    `json:"activities,omitempty" yaml:"activities,omitempty"`
	Timestamps     `yaml:",inline"`
}

func (p Project) RecordID() string { return p.ID }
