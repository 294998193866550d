package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/opsdeck/opsdeck/query"
	"github.com/opsdeck/opsdeck/store"
	"github.com/opsdeck/opsdeck/types"
)

// TimesheetService manages weekly timesheets and their day entries.
// TotalHours is recomputed on every entry mutation.
type TimesheetService struct {
	base
	col      *store.Collection[types.Timesheet]
	users    *store.Collection[types.User]
	projects *store.Collection[types.Project]
}

// CreateTimesheetInput holds the caller-supplied fields for a new
// timesheet. UserID must resolve.
type CreateTimesheetInput struct {
	UserID    string
	WeekStart time.Time
}

// UpdateTimesheetInput merges partially into an existing timesheet.
// Changing UserID re-resolves the denormalized owner snapshot.
type UpdateTimesheetInput struct {
	UserID    *string
	WeekStart *time.Time
}

// DayEntryInput holds the fields of a day entry. ProjectID must resolve.
type DayEntryInput struct {
	Date      time.Time
	ProjectID string
	Hours     float64
	Note      string
}

func (s *TimesheetService) List(opts query.Options) query.Page[types.Timesheet] {
	s.simulate()
	return s.col.List(opts)
}

func (s *TimesheetService) Get(id string) (types.Timesheet, error) {
	s.simulate()
	return s.col.Get(id)
}

func (s *TimesheetService) Create(in CreateTimesheetInput) (types.Timesheet, error) {
	s.simulate()

	owner, err := s.resolveUser(in.UserID)
	if err != nil {
		return types.Timesheet{}, err
	}
	weekStart := in.WeekStart
	if weekStart.IsZero() {
		weekStart = startOfWeek(s.now())
	}

	now := s.now()
	return s.col.Insert(types.Timesheet{
		ID:         newID(),
		Code:       nextCode("TS", timesheetCodeBase, s.col.Count()),
		User:       owner,
		WeekStart:  weekStart,
		Status:     types.TimesheetPending,
		Timestamps: types.Timestamps{CreatedAt: now, UpdatedAt: now},
	})
}

func (s *TimesheetService) Update(id string, in UpdateTimesheetInput) (types.Timesheet, error) {
	s.simulate()

	var newOwner *types.UserRef
	if in.UserID != nil {
		ref, err := s.resolveUser(*in.UserID)
		if err != nil {
			return types.Timesheet{}, err
		}
		newOwner = &ref
	}

	return s.col.Update(id, func(t *types.Timesheet) error {
		if newOwner != nil {
			t.User = *newOwner
		}
		if in.WeekStart != nil {
			t.WeekStart = *in.WeekStart
		}
		t.UpdatedAt = s.now()
		return nil
	})
}

func (s *TimesheetService) Delete(id string) error {
	s.simulate()
	return s.col.Delete(id)
}

// SetStatus sets the approval status. Any transition is allowed, so a
// rejected sheet can go straight back to approved.
func (s *TimesheetService) SetStatus(id string, status types.TimesheetStatus) (types.Timesheet, error) {
	s.simulate()
	return s.col.Update(id, func(t *types.Timesheet) error {
		t.Status = status
		t.UpdatedAt = s.now()
		return nil
	})
}

func (s *TimesheetService) Approve(id string) (types.Timesheet, error) {
	return s.SetStatus(id, types.TimesheetApproved)
}

func (s *TimesheetService) Reject(id string) (types.Timesheet, error) {
	return s.SetStatus(id, types.TimesheetRejected)
}

func (s *TimesheetService) AddEntry(timesheetID string, in DayEntryInput) (types.Timesheet, error) {
	s.simulate()
	project, err := s.resolveProject(in.ProjectID)
	if err != nil {
		return types.Timesheet{}, err
	}
	return s.col.Update(timesheetID, func(t *types.Timesheet) error {
		t.Entries = append(t.Entries, types.DayEntry{
			ID:      newID(),
			Date:    in.Date,
			Project: project,
			Hours:   in.Hours,
			Note:    in.Note,
		})
		t.TotalHours = sumHours(t.Entries)
		t.UpdatedAt = s.now()
		return nil
	})
}

func (s *TimesheetService) UpdateEntry(timesheetID, entryID string, in DayEntryInput) (types.Timesheet, error) {
	s.simulate()
	project, err := s.resolveProject(in.ProjectID)
	if err != nil {
		return types.Timesheet{}, err
	}
	return s.col.Update(timesheetID, func(t *types.Timesheet) error {
		for i := range t.Entries {
			if t.Entries[i].ID != entryID {
				continue
			}
			t.Entries[i].Date = in.Date
			t.Entries[i].Project = project
			t.Entries[i].Hours = in.Hours
			t.Entries[i].Note = in.Note
			t.TotalHours = sumHours(t.Entries)
			t.UpdatedAt = s.now()
			return nil
		}
		return fmt.Errorf("day entry %q: %w", entryID, types.ErrNotFound)
	})
}

func (s *TimesheetService) RemoveEntry(timesheetID, entryID string) (types.Timesheet, error) {
	s.simulate()
	return s.col.Update(timesheetID, func(t *types.Timesheet) error {
		for i := range t.Entries {
			if t.Entries[i].ID != entryID {
				continue
			}
			t.Entries = append(t.Entries[:i], t.Entries[i+1:]...)
			t.TotalHours = sumHours(t.Entries)
			t.UpdatedAt = s.now()
			return nil
		}
		return fmt.Errorf("day entry %q: %w", entryID, types.ErrNotFound)
	})
}

func (s *TimesheetService) resolveUser(id string) (types.UserRef, error) {
	if id == "" {
		return types.UserRef{}, fmt.Errorf("%w: user id is required", types.ErrReferenceNotFound)
	}
	user, err := s.users.Get(id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return types.UserRef{}, fmt.Errorf("%w: user %q", types.ErrReferenceNotFound, id)
		}
		return types.UserRef{}, err
	}
	return userRef(user), nil
}

func (s *TimesheetService) resolveProject(id string) (types.ProjectRef, error) {
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

func sumHours(entries []types.DayEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// startOfWeek returns the Monday of the week containing t, at midnight UTC.
func startOfWeek(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := t.AddDate(0, 0, 1-weekday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
