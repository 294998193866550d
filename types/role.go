package types

// Role is a named permission set from the settings screen.
type Role struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Permissions []string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	Timestamps  `yaml:",inline"`
}

func (r Role) RecordID() string { return r.ID }
