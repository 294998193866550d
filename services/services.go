// Package services exposes the per-entity accessors of the dashboard
// data layer. Each service wraps a generic collection with the entity's
// creation defaults, human-readable codes, denormalized cross-entity
// reference snapshots and sub-collection mutators.
package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opsdeck/opsdeck/seed"
	"github.com/opsdeck/opsdeck/storage"
	"github.com/opsdeck/opsdeck/store"
	"github.com/opsdeck/opsdeck/types"
)

// Slot keys, one durable slot per entity kind.
const (
	slotClients    = "clients"
	slotProjects   = "projects"
	slotTasks      = "tasks"
	slotUsers      = "users"
	slotTimesheets = "timesheets"
	slotRoles      = "roles"
	slotSettings   = "generalSettings"
)

// Starting points for the sequential human-readable codes. The seed
// datasets begin just above these bases.
const (
	clientCodeBase    = 100
	projectCodeBase   = 40
	taskCodeBase      = 10000
	userCodeBase      = 10000
	timesheetCodeBase = 5000
)

// Services bundles every entity accessor over one storage backend.
type Services struct {
	Clients    *ClientService
	Projects   *ProjectService
	Tasks      *TaskService
	Users      *UserService
	Timesheets *TimesheetService
	Roles      *RoleService
	Settings   *SettingsService

	latency time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures the service bundle.
type Option func(*Services)

// WithLatency adds a fixed artificial delay in front of every operation,
// emulating network latency so UIs exercise their loading states.
func WithLatency(d time.Duration) Option {
	return func(s *Services) { s.latency = d }
}

// WithClock overrides the time source for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Services) { s.now = now }
}

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Services) { s.logger = l }
}

// New wires every service over the given backend. Collections load
// lazily on first access and fall back to the built-in seed data.
func New(backend storage.Backend, opts ...Option) *Services {
	s := &Services{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	clients := store.New(backend, slotClients, seed.Clients(), store.WithLogger[types.Client](s.logger))
	projects := store.New(backend, slotProjects, seed.Projects(), store.WithLogger[types.Project](s.logger))
	tasks := store.New(backend, slotTasks, seed.Tasks(), store.WithLogger[types.Task](s.logger))
	users := store.New(backend, slotUsers, seed.Users(), store.WithLogger[types.User](s.logger))
	timesheets := store.New(backend, slotTimesheets, seed.Timesheets(), store.WithLogger[types.Timesheet](s.logger))
	roles := store.New(backend, slotRoles, seed.Roles(), store.WithLogger[types.Role](s.logger))
	settings := store.New(backend, slotSettings, seed.Settings(), store.WithLogger[types.GeneralSettings](s.logger))

	b := base{latency: s.latency, now: s.now, logger: s.logger}
	s.Clients = &ClientService{base: b, col: clients}
	s.Projects = &ProjectService{base: b, col: projects, clients: clients, users: users}
	s.Tasks = &TaskService{base: b, col: tasks, projects: projects, users: users}
	s.Users = &UserService{base: b, col: users}
	s.Timesheets = &TimesheetService{base: b, col: timesheets, users: users, projects: projects}
	s.Roles = &RoleService{base: b, col: roles}
	s.Settings = &SettingsService{base: b, col: settings}
	return s
}

// ResetAll restores every collection to its seed dataset.
func (s *Services) ResetAll() error {
	resets := []func() error{
		s.Clients.col.Reset,
		s.Projects.col.Reset,
		s.Tasks.col.Reset,
		s.Users.col.Reset,
		s.Timesheets.col.Reset,
		s.Roles.col.Reset,
		s.Settings.col.Reset,
	}
	for _, reset := range resets {
		if err := reset(); err != nil {
			return err
		}
	}
	return nil
}

// base carries the behavior shared by every entity service.
type base struct {
	latency time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// simulate blocks for the configured artificial latency. Operations are
// not cancellable; callers that lose interest discard the result.
func (b base) simulate() {
	if b.latency > 0 {
		time.Sleep(b.latency)
	}
}

func newID() string {
	return uuid.New().String()
}

// nextCode builds a sequential display code from the live record count.
// Uniqueness is best-effort: a delete followed by a create can reuse a
// number, which matches how the dashboard labels records.
func nextCode(prefix string, codeBase, count int) string {
	return fmt.Sprintf("%s-%d", prefix, codeBase+count+1)
}

// Reference snapshot constructors. These capture the referenced record's
// display fields at write time; the copies go stale if the source record
// is later renamed, by design.

func clientRef(c types.Client) types.ClientRef {
	return types.ClientRef{ID: c.ID, Name: c.Name, Code: c.Code}
}

func userRef(u types.User) types.UserRef {
	return types.UserRef{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

func projectRef(p types.Project) types.ProjectRef {
	return types.ProjectRef{ID: p.ID, Name: p.Name, Code: p.Code}
}
