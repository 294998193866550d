package services

import (
	"fmt"
	"time"

	"github.com/opsdeck/opsdeck/query"
	"github.com/opsdeck/opsdeck/store"
	"github.com/opsdeck/opsdeck/types"
)

// ClientService manages the clients collection and its contact
// sub-collection.
type ClientService struct {
	base
	col *store.Collection[types.Client]
}

// CreateClientInput holds the caller-supplied fields for a new client.
type CreateClientInput struct {
	Name           string
	Industry       string
	Status         types.ClientStatus
	OnboardingDate time.Time
	Notes          string
}

// UpdateClientInput merges partially into an existing client; nil fields
// are left untouched.
type UpdateClientInput struct {
	Name           *string
	Industry       *string
	Status         *types.ClientStatus
	OnboardingDate *time.Time
	Notes          *string
}

// ContactInput holds the fields of a client contact.
type ContactInput struct {
	Name  string
	Email string
	Phone string
	Role  string
}

func (s *ClientService) List(opts query.Options) query.Page[types.Client] {
	s.simulate()
	return s.col.List(opts)
}

func (s *ClientService) Get(id string) (types.Client, error) {
	s.simulate()
	return s.col.Get(id)
}

func (s *ClientService) Create(in CreateClientInput) (types.Client, error) {
	s.simulate()
	if in.Name == "" {
		return types.Client{}, fmt.Errorf("client name is required")
	}

	now := s.now()
	status := in.Status
	if status == "" {
		status = types.ClientActive
	}
	onboarding := in.OnboardingDate
	if onboarding.IsZero() {
		onboarding = now
	}

	return s.col.Insert(types.Client{
		ID:             newID(),
		Code:           nextCode("CPL", clientCodeBase, s.col.Count()),
		Name:           in.Name,
		Industry:       in.Industry,
		Status:         status,
		OnboardingDate: onboarding,
		Notes:          in.Notes,
		Timestamps:     types.Timestamps{CreatedAt: now, UpdatedAt: now},
	})
}

func (s *ClientService) Update(id string, in UpdateClientInput) (types.Client, error) {
	s.simulate()
	return s.col.Update(id, func(c *types.Client) error {
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Industry != nil {
			c.Industry = *in.Industry
		}
		if in.Status != nil {
			c.Status = *in.Status
		}
		if in.OnboardingDate != nil {
			c.OnboardingDate = *in.OnboardingDate
		}
		if in.Notes != nil {
			c.Notes = *in.Notes
		}
		c.UpdatedAt = s.now()
		return nil
	})
}

func (s *ClientService) Delete(id string) error {
	s.simulate()
	return s.col.Delete(id)
}

// SetStatus sets the client status. Any transition is allowed.
func (s *ClientService) SetStatus(id string, status types.ClientStatus) (types.Client, error) {
	s.simulate()
	return s.col.Update(id, func(c *types.Client) error {
		c.Status = status
		c.UpdatedAt = s.now()
		return nil
	})
}

func (s *ClientService) AddContact(clientID string, in ContactInput) (types.Client, error) {
	s.simulate()
	if in.Name == "" {
		return types.Client{}, fmt.Errorf("contact name is required")
	}
	return s.col.Update(clientID, func(c *types.Client) error {
		c.Contacts = append(c.Contacts, types.Contact{
			ID:    newID(),
			Name:  in.Name,
			Email: in.Email,
			Phone: in.Phone,
			Role:  in.Role,
		})
		c.UpdatedAt = s.now()
		return nil
	})
}

func (s *ClientService) UpdateContact(clientID, contactID string, in ContactInput) (types.Client, error) {
	s.simulate()
	return s.col.Update(clientID, func(c *types.Client) error {
		for i := range c.Contacts {
			if c.Contacts[i].ID != contactID {
				continue
			}
			c.Contacts[i].Name = in.Name
			c.Contacts[i].Email = in.Email
			c.Contacts[i].Phone = in.Phone
			c.Contacts[i].Role = in.Role
			c.UpdatedAt = s.now()
			return nil
		}
		return fmt.Errorf("contact %q: %w", contactID, types.ErrNotFound)
	})
}

func (s *ClientService) RemoveContact(clientID, contactID string) (types.Client, error) {
	s.simulate()
	return s.col.Update(clientID, func(c *types.Client) error {
		for i := range c.Contacts {
			if c.Contacts[i].ID != contactID {
				continue
			}
			c.Contacts = append(c.Contacts[:i], c.Contacts[i+1:]...)
			c.UpdatedAt = s.now()
			return nil
		}
		return fmt.Errorf("contact %q: %w", contactID, types.ErrNotFound)
	})
}
