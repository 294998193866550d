package types

// UserStatus enumerates the user account states.
type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

// User is a staff member. Role is the role name as displayed, not a
// foreign key into the roles collection.
type User struct {
	ID         string     `json:"id" yaml:"id"`
	Code       string     `json:"code" yaml:"code"`
	Name       string     `json:"name" yaml:"name"`
	Email      string     `json:"email" yaml:"email"`
	Avatar     string     `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Role       string     `json:"role,omitempty" yaml:"role,omitempty"`
	Department string     `json:"department,omitempty" yaml:"department,omitempty"`
	Status     UserStatus `json:"status" yaml:"status"`
	Phone      string     `json:"phone,omitempty" yaml:"phone,omitempty"`
	Timestamps `yaml:",inline"`
}

func (u User) RecordID() string { return u.ID }
