package services

import (
	"fmt"

	"github.com/opsdeck/opsdeck/query"
	"github.com/opsdeck/opsdeck/store"
	"github.com/opsdeck/opsdeck/types"
)

// UserService manages the users collection. Deleting a user does not
// cascade: reference snapshots on projects, tasks and timesheets keep the
// deleted user's display fields.
type UserService struct {
	base
	col *store.Collection[types.User]
}

// CreateUserInput holds the caller-supplied fields for a new user.
type CreateUserInput struct {
	Name       string
	Email      string
	Avatar     string
	Role       string
	Department string
	Status     types.UserStatus
	Phone      string
}

// UpdateUserInput merges partially into an existing user.
type UpdateUserInput struct {
	Name       *string
	Email      *string
	Avatar     *string
	Role       *string
	Department *string
	Status     *types.UserStatus
	Phone      *string
}

func (s *UserService) List(opts query.Options) query.Page[types.User] {
	s.simulate()
	return s.col.List(opts)
}

func (s *UserService) Get(id string) (types.User, error) {
	s.simulate()
	return s.col.Get(id)
}

func (s *UserService) Create(in CreateUserInput) (types.User, error) {
	s.simulate()
	if in.Name == "" {
		return types.User{}, fmt.Errorf("user name is required")
	}
	if in.Email == "" {
		return types.User{}, fmt.Errorf("user email is required")
	}

	now := s.now()
	status := in.Status
	if status == "" {
		status = types.UserActive
	}

	return s.col.Insert(types.User{
		ID:         newID(),
		Code:       nextCode("EMP", userCodeBase, s.col.Count()),
		Name:       in.Name,
		Email:      in.Email,
		Avatar:     in.Avatar,
		Role:       in.Role,
		Department: in.Department,
		Status:     status,
		Phone:      in.Phone,
		Timestamps: types.Timestamps{CreatedAt: now, UpdatedAt: now},
	})
}

func (s *UserService) Update(id string, in UpdateUserInput) (types.User, error) {
	s.simulate()
	return s.col.Update(id, func(u *types.User) error {
		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Avatar != nil {
			u.Avatar = *in.Avatar
		}
		if in.Role != nil {
			u.Role = *in.Role
		}
		if in.Department != nil {
			u.Department = *in.Department
		}
		if in.Status != nil {
			u.Status = *in.Status
		}
		if in.Phone != nil {
			u.Phone = *in.Phone
		}
		u.UpdatedAt = s.now()
		return nil
	})
}

func (s *UserService) Delete(id string) error {
	s.simulate()
	return s.col.Delete(id)
}

// SetStatus sets the user status. Any transition is allowed.
func (s *UserService) SetStatus(id string, status types.UserStatus) (types.User, error) {
	s.simulate()
	return s.col.Update(id, func(u *types.User) error {
		u.Status = status
		u.UpdatedAt = s.now()
		return nil
	})
}
