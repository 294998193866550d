package services

import (
	"fmt"

	"github.com/opsdeck/opsdeck/store"
	"github.com/opsdeck/opsdeck/types"
)

// SettingsService manages the general settings, stored as a one-element
// collection so it rides the same load/save machinery as everything else.
type SettingsService struct {
	base
	col *store.Collection[types.GeneralSettings]
}

// UpdateSettingsInput merges partially into the settings record.
type UpdateSettingsInput struct {
	CompanyName        *string
	Timezone           *string
	Currency           *string
	WorkweekStart      *string
	EmailNotifications *bool
	WeeklyDigest       *bool
}

// Get returns the settings record.
func (s *SettingsService) Get() (types.GeneralSettings, error) {
	s.simulate()
	all := s.col.All()
	if len(all) == 0 {
		return types.GeneralSettings{}, fmt.Errorf("general settings: %w", types.ErrNotFound)
	}
	return all[0], nil
}

// Update merges changes into the settings record.
func (s *SettingsService) Update(in UpdateSettingsInput) (types.GeneralSettings, error) {
	s.simulate()
	all := s.col.All()
	if len(all) == 0 {
		return types.GeneralSettings{}, fmt.Errorf("general settings: %w", types.ErrNotFound)
	}
	return s.col.Update(all[0].ID, func(g *types.GeneralSettings) error {
		if in.CompanyName != nil {
			g.CompanyName = *in.CompanyName
		}
		if in.Timezone != nil {
			g.Timezone = *in.Timezone
		}
		if in.Currency != nil {
			g.Currency = *in.Currency
		}
		if in.WorkweekStart != nil {
			g.WorkweekStart = *in.WorkweekStart
		}
		if in.EmailNotifications != nil {
			g.EmailNotifications = *in.EmailNotifications
		}
		if in.WeeklyDigest != nil {
			g.WeeklyDigest = *in.WeeklyDigest
		}
		g.UpdatedAt = s.now()
		return nil
	})
}
