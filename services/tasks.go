package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/opsdeck/opsdeck/query"
	"github.com/opsdeck/opsdeck/store"
	"github.com/opsdeck/opsdeck/types"
)

// TaskService manages the tasks collection. Tasks always belong to a
// project; the assignee is optional.
type TaskService struct {
	base
	col      *store.Collection[types.Task]
	projects *store.Collection[types.Project]
	users    *store.Collection[types.User]
}

// CreateTaskInput holds the caller-supplied fields for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   string
	AssigneeID  string
	Status      types.TaskStatus
	Priority    types.TaskPriority
	DueDate     time.Time
}

// UpdateTaskInput merges partially into an existing task. Changing
// ProjectID or AssigneeID re-resolves the denormalized snapshot.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	ProjectID   *string
	AssigneeID  *string
	Status      *types.TaskStatus
	Priority    *types.TaskPriority
	DueDate     *time.Time
}

func (s *TaskService) List(opts query.Options) query.Page[types.Task] {
	s.simulate()
	return s.col.List(opts)
}

func (s *TaskService) Get(id string) (types.Task, error) {
	s.simulate()
	return s.col.Get(id)
}

func (s *TaskService) Create(in CreateTaskInput) (types.Task, error) {
	s.simulate()
	if in.Title == "" {
		return types.Task{}, fmt.Errorf("task title is required")
	}

	project, err := s.resolveProject(in.ProjectID)
	if err != nil {
		return types.Task{}, err
	}
	var assignee types.UserRef
	if in.AssigneeID != "" {
		assignee, err = s.resolveUser(in.AssigneeID)
		if err != nil {
			return types.Task{}, err
		}
	}

	now := s.now()
	status := in.Status
	if status == "" {
		status = types.TaskToDo
	}
	priority := in.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}

	return s.col.Insert(types.Task{
		ID:          newID(),
		Code:        nextCode("TSK", taskCodeBase, s.col.Count()),
		Title:       in.Title,
		Description: in.Description,
		Project:     project,
		Assignee:    assignee,
		Status:      status,
		Priority:    priority,
		DueDate:     in.DueDate,
		Timestamps:  types.Timestamps{CreatedAt: now, UpdatedAt: now},
	})
}

func (s *TaskService) Update(id string, in UpdateTaskInput) (types.Task, error) {
	s.simulate()

	var newProject *types.ProjectRef
	if in.ProjectID != nil {
		ref, err := s.resolveProject(*in.ProjectID)
		if err != nil {
			return types.Task{}, err
		}
		newProject = &ref
	}
	var newAssignee *types.UserRef
	if in.AssigneeID != nil {
		if *in.AssigneeID == "" {
			newAssignee = &types.UserRef{}
		} else {
			ref, err := s.resolveUser(*in.AssigneeID)
			if err != nil {
				return types.Task{}, err
			}
			newAssignee = &ref
		}
	}

	return s.col.Update(id, func(t *types.Task) error {
		if in.Title != nil {
			t.Title = *in.Title
		}
		if in.Description != nil {
			t.Description = *in.Description
		}
		if newProject != nil {
			t.Project = *newProject
		}
		if newAssignee != nil {
			t.Assignee = *newAssignee
		}
		if in.Status != nil {
			t.Status = *in.Status
		}
		if in.Priority != nil {
			t.Priority = *in.Priority
		}
		if in.DueDate != nil {
			t.DueDate = *in.DueDate
		}
		t.UpdatedAt = s.now()
		return nil
	})
}

func (s *TaskService) Delete(id string) error {
	s.simulate()
	return s.col.Delete(id)
}

// SetStatus sets the task status. Any transition is allowed.
func (s *TaskService) SetStatus(id string, status types.TaskStatus) (types.Task, error) {
	s.simulate()
	return s.col.Update(id, func(t *types.Task) error {
		t.Status = status
		t.UpdatedAt = s.now()
		return nil
	})
}

// SetPriority sets the task priority.
func (s *TaskService) SetPriority(id string, priority types.TaskPriority) (types.Task, error) {
	s.simulate()
	return s.col.Update(id, func(t *types.Task) error {
		t.Priority = priority
		t.UpdatedAt = s.now()
		return nil
	})
}

func (s *TaskService) resolveProject(id string) (types.ProjectRef, error) {
	if id == "" {
		return types.ProjectRef{}, fmt.Errorf("%w: project id is required", types.ErrReferenceNotFound)
	}
	project, err := s.projects.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.ProjectRef{}, fmt.Errorf("%w: project %q", types.ErrReferenceNotFound, id)
		}
		return types.ProjectRef{}, err
	}
	return projectRef(project), nil
}

func (s *TaskService) resolveUser(id string) (types.UserRef, error) {
	user, err := s.users.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.UserRef{}, fmt.Errorf("%w: user %q", types.ErrReferenceNotFound, id)
		}
		return types.UserRef{}, err
	}
	return userRef(user), nil
}
