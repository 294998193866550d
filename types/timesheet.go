package types

import "time"

// TimesheetStatus enumerates the approval states of a weekly timesheet.
type TimesheetStatus string

const (
	TimesheetPending  TimesheetStatus = "Pending"
	TimesheetApproved TimesheetStatus = "Approved"
	TimesheetRejected TimesheetStatus = "Rejected"
)

// DayEntry is a single day's booking against a project.
type DayEntry struct {
	ID      string     `json:"id" yaml:"id"`
	Date    time.Time  `json:"date" yaml:"date"`
	Project ProjectRef `json:"project" yaml:"project"`
	Hours   float64    `json:"hours" yaml:"hours"`
	Note    string     `json:"note,omitempty" yaml:"note,omitempty"`
}

// Timesheet is a user's week of day entries. TotalHours is recomputed by
// the timesheet service whenever entries change.
type Timesheet struct {
	ID         string          `json:"id" yaml:"id"`
	Code       string          `json:"code" yaml:"code"`
	User       UserRef         `json:"user" yaml:"user"`
	WeekStart  time.Time       `json:"startDate" yaml:"startDate"`
	Status     TimesheetStatus `json:"status" yaml:"status"`
	Entries    []DayEntry      `json:"entries,omitempty" yaml:"entries,omitempty"`
	TotalHours float64         `json:"totalHours" yaml:"totalHours"`
	Timestamps `yaml:",inline"`
}

func (t Timesheet) RecordID() string { return t.ID }
