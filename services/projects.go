package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/opsdeck/opsdeck/query"
	"github.com/opsdeck/opsdeck/store"
	"github.com/opsdeck/opsdeck/types"
)

// ProjectService manages the projects collection. It reads the client and
// user collections to build reference snapshots, and maintains the
// denormalized project count on the owning client.
type ProjectService struct {
	base
	col     *store.Collection[types.Project]
	clients *store.Collection[types.Client]
	users   *store.Collection[types.User]
}

// CreateProjectInput holds the caller-supplied fields for a new project.
// ClientID must resolve; ProjectManagerID is optional.
type CreateProjectInput struct {
	Name             string
	Description      string
	ClientID         string
	ProjectManagerID string
	Status           types.ProjectStatus
	StartDate        time.Time
	DueDate          time.Time
	Budget           float64
}

// UpdateProjectInput merges partially into an existing project. Changing
// ClientID or ProjectManagerID re-resolves the denormalized snapshot.
type UpdateProjectInput struct {
	Name             *string
	Description      *string
	ClientID         *string
	ProjectManagerID *string
	Status           *types.ProjectStatus
	StartDate        *time.Time
	DueDate          *time.Time
	Budget           *float64
}

func (s *ProjectService) List(opts query.Options) query.Page[types.Project] {
	s.simulate()
	return s.col.List(opts)
}

func (s *ProjectService) Get(id string) (types.Project, error) {
	s.simulate()
	return s.col.Get(id)
}

func (s *ProjectService) Create(in CreateProjectInput) (types.Project, error) {
	s.simulate()
	if in.Name == "" {
		return types.Project{}, fmt.Errorf("project name is required")
	}

	client, err := s.resolveClient(in.ClientID)
	if err != nil {
		return types.Project{}, err
	}
	var manager types.UserRef
	if in.ProjectManagerID != "" {
		manager, err = s.resolveUser(in.ProjectManagerID)
		if err != nil {
			return types.Project{}, err
		}
	}

	now := s.now()
	status := in.Status
	if status == "" {
		status = types.ProjectActive
	}

	created, err := s.col.Insert(types.Project{
		ID:             newID(),
		Code:           nextCode("PM", projectCodeBase, s.col.Count()),
		Name:           in.Name,
		Description:    in.Description,
		Client:         client,
		ProjectManager: manager,
		Status:         status,
		StartDate:      in.StartDate,
		DueDate:        in.DueDate,
		Budget:         in.Budget,
		Timestamps:     types.Timestamps{CreatedAt: now, UpdatedAt: now},
	})
	if err != nil {
		return created, err
	}

	// Second, separate write: bump the owning client's project count.
	// There is no atomicity between the two writes; a failure here
	// leaves the count stale.
	if err := s.adjustClientCount(client.ID, +1); err != nil {
		s.logger.Warn("project count update failed", "client", client.ID, "error", err)
	}
	return created, nil
}

func (s *ProjectService) Update(id string, in UpdateProjectInput) (types.Project, error) {
	s.simulate()

	// Resolve new references before taking the project write path.
	var newClient *types.ClientRef
	if in.ClientID != nil {
		ref, err := s.resolveClient(*in.ClientID)
		if err != nil {
			return types.Project{}, err
		}
		newClient = &ref
	}
	var newManager *types.UserRef
	if in.ProjectManagerID != nil {
		if *in.ProjectManagerID == "" {
			newManager = &types.UserRef{}
		} else {
			ref, err := s.resolveUser(*in.ProjectManagerID)
			if err != nil {
				return types.Project{}, err
			}
			newManager = &ref
		}
	}

	return s.col.Update(id, func(p *types.Project) error {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if newClient != nil {
			p.Client = *newClient
		}
		if newManager != nil {
			p.ProjectManager = *newManager
		}
		if in.Status != nil {
			p.Status = *in.Status
		}
		if in.StartDate != nil {
			p.StartDate = *in.StartDate
		}
		if in.DueDate != nil {
			p.DueDate = *in.DueDate
		}
		if in.Budget != nil {
			p.Budget = *in.Budget
		}
		p.UpdatedAt = s.now()
		return nil
	})
}

func (s *ProjectService) Delete(id string) error {
	s.simulate()
	project, err := s.col.Get(id)
	if err != nil {
		return err
	}
	if err := s.col.Delete(id); err != nil {
		return err
	}
	// Counterpart of the create-time increment; same non-atomic caveat.
	if err := s.adjustClientCount(project.Client.ID, -1); err != nil {
		s.logger.Warn("project count update failed", "client", project.Client.ID, "error", err)
	}
	return nil
}

// SetStatus sets the project status. Any transition is allowed.
func (s *ProjectService) SetStatus(id string, status types.ProjectStatus) (types.Project, error) {
	s.simulate()
	return s.col.Update(id, func(p *types.Project) error {
		p.Status = status
		p.UpdatedAt = s.now()
		return nil
	})
}

// AddTeamMember snapshots the user onto the project team. Adding a user
// who is already on the team is a no-op.
func (s *ProjectService) AddTeamMember(projectID, userID string) (types.Project, error) {
	s.simulate()
	member, err := s.resolveUser(userID)
	if err != nil {
		return types.Project{}, err
	}
	return s.col.Update(projectID, func(p *types.Project) error {
		for _, m := range p.Team {
			if m.ID == member.ID {
				return nil
			}
		}
		p.Team = append(p.Team, member)
		p.UpdatedAt = s.now()
		return nil
	})
}

func (s *ProjectService) RemoveTeamMember(projectID, userID string) (types.Project, error) {
	s.simulate()
	return s.col.Update(projectID, func(p *types.Project) error {
		for i := range p.Team {
			if p.Team[i].ID != userID {
				continue
			}
			p.Team = append(p.Team[:i], p.Team[i+1:]...)
			p.UpdatedAt = s.now()
			return nil
		}
		return fmt.Errorf("team member %q: %w", userID, types.ErrNotFound)
	})
}

// AddActivity appends a dated log entry authored by the given user.
func (s *ProjectService) AddActivity(projectID, authorID, text string) (types.Project, error) {
	s.simulate()
	if text == "" {
		return types.Project{}, fmt.Errorf("activity text is required")
	}
	author, err := s.resolveUser(authorID)
	if err != nil {
		return types.Project{}, err
	}
	return s.col.Update(projectID, func(p *types.Project) error {
		p.Activities = append(p.Activities, types.Activity{
			ID:     newID(),
			Text:   text,
			Author: author,
			Date:   s.now(),
		})
		p.UpdatedAt = s.now()
		return nil
	})
}

func (s *ProjectService) RemoveActivity(projectID, activityID string) (types.Project, error) {
	s.simulate()
	return s.col.Update(projectID, func(p *types.Project) error {
		for i := range p.Activities {
			if p.Activities[i].ID != activityID {
				continue
			}
			p.Activities = append(p.Activities[:i], p.Activities[i+1:]...)
			p.UpdatedAt = s.now()
			return nil
		}
		return fmt.Errorf("activity %q: %w", activityID, types.ErrNotFound)
	})
}

func (s *ProjectService) resolveClient(id string) (types.ClientRef, error) {
	if id == "" {
		return types.ClientRef{}, fmt.Errorf("%w: client id is required", types.ErrReferenceNotFound)
	}
	client, err := s.clients.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.ClientRef{}, fmt.Errorf("%w: client %q", types.ErrReferenceNotFound, id)
		}
		return types.ClientRef{}, err
	}
	return clientRef(client), nil
}

func (s *ProjectService) resolveUser(id string) (types.UserRef, error) {
	user, err := s.users.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.UserRef{}, fmt.Errorf("%w: user %q", types.ErrReferenceNotFound, id)
		}
		return types.UserRef{}, err
	}
	return userRef(user), nil
}

func (s *ProjectService) adjustClientCount(clientID string, delta int) error {
	_, err := s.clients.Update(clientID, func(c *types.Client) error {
		c.Projects += delta
		if c.Projects < 0 {
			c.Projects = 0
		}
		return nil
	})
	return err
}
