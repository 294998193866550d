package types

// Cross-entity references are snapshots of the referenced record's display
// fields captured at write time. They are not kept in sync afterwards:
// renaming a client does not rewrite the projects that point at it. The
// staleness window is part of the data model, not an oversight.

// ClientRef is the denormalized client snapshot embedded in projects.
type ClientRef struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}

// UserRef is the denormalized user snapshot embedded wherever a person is
// referenced (project manager, task assignee, timesheet owner, activity
// author, team member).
type UserRef struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Email  string `json:"email,omitempty" yaml:"email,omitempty"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// ProjectRef is the denormalized project snapshot embedded in tasks and
// timesheet day entries.
type ProjectRef struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
}
