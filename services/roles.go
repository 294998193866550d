package services

import (
	"fmt"

	"github.com/opsdeck/opsdeck/query"
	"github.com/opsdeck/opsdeck/store"
	"github.com/opsdeck/opsdeck/types"
)

// RoleService manages the roles collection from the settings screen.
type RoleService struct {
	base
	col *store.Collection[types.Role]
}

// CreateRoleInput holds the caller-supplied fields for a new role.
type CreateRoleInput struct {
	Name        string
	Description string
	Permissions []string
}

// UpdateRoleInput merges partially into an existing role.
type UpdateRoleInput struct {
	Name        *string
	Description *string
	Permissions *[]string
}

func (s *RoleService) List(opts query.Options) query.Page[types.Role] {
	s.simulate()
	return s.col.List(opts)
}

func (s *RoleService) Get(id string) (types.Role, error) {
	s.simulate()
	return s.col.Get(id)
}

func (s *RoleService) Create(in CreateRoleInput) (types.Role, error) {
	s.simulate()
	if in.Name == "" {
		return types.Role{}, fmt.Errorf("role name is required")
	}
	now := s.now()
	return s.col.Insert(types.Role{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Permissions: in.Permissions,
		Timestamps:  types.Timestamps{CreatedAt: now, UpdatedAt: now},
	})
}

func (s *RoleService) Update(id string, in UpdateRoleInput) (types.Role, error) {
	s.simulate()
	return s.col.Update(id, func(r *types.Role) error {
		if in.Name != nil {
			r.Name = *in.Name
		}
		if in.Description != nil {
			r.Description = *in.Description
		}
		if in.Permissions != nil {
			r.Permissions = *in.Permissions
		}
		r.UpdatedAt = s.now()
		return nil
	})
}

func (s *RoleService) Delete(id string) error {
	s.simulate()
	return s.col.Delete(id)
}
