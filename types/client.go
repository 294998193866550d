package types

import "time"

// ClientStatus enumerates the client lifecycle states.
type ClientStatus string

const (
	ClientActive   ClientStatus = "Active"
	ClientInactive ClientStatus = "Inactive"
)

// Contact is a named person attached to a client.
type Contact struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Role  string `json:"role,omitempty" yaml:"role,omitempty"`
}

// Client is a customer account. Projects holds a denormalized count of the
// projects owned by this client, maintained by the project service with a
// second, separate write.
type Client struct {
	ID             string       `json:"id" yaml:"id"`
	Code           string       `json:"code" yaml:"code"`
	Name           string       `json:"name" yaml:"name"`
	Industry       string       `json:"industry,omitempty" yaml:"industry,omitempty"`
	Status         ClientStatus `json:"status" yaml:"status"`
	OnboardingDate time.Time    `json:"onboardingDate,omitempty" yaml:"onboardingDate,omitempty"`
	Contacts       []Contact    `json:"contacts,omitempty" yaml:"contacts,omitempty"`
	Projects       int          `json:"projects" yaml:"projects"`
	Notes          string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Timestamps     `yaml:",inline"`
}

func (c Client) RecordID() string { return c.ID }
