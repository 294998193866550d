package services

import (
	"errors"
	"testing"

	"github.com/opsdeck/opsdeck/types"
)

func TestSettingsGetAndPartialUpdate(t *testing.T) {
	svc := newTestServices(t)

	before, err := svc.Settings.Get()
	if err != nil {
		t.Fatal(err)
	}
	if before.CompanyName == "" {
		t.Fatal("seed settings have no company name")
	}

	tz := "Europe/Berlin"
	after, err := svc.Settings.Update(UpdateSettingsInput{Timezone: &tz})
	if err != nil {
		t.Fatal(err)
	}
	if after.Timezone != "Europe/Berlin" {
		t.Errorf("timezone = %s", after.Timezone)
	}
	if after.CompanyName != before.CompanyName {
		t.Errorf("company name changed on partial update: %s", after.CompanyName)
	}
}

func TestRolesCRUD(t *testing.T) {
	svc := newTestServices(t)

	role, err := svc.Roles.Create(CreateRoleInput{
		Name:        "Auditor",
		Permissions: []string{"reports:read"},
	})
	if err != nil {
		t.Fatal(err)
	}

	desc := "Read-only reporting access"
	updated, err := svc.Roles.Update(role.ID, UpdateRoleInput{Description: &desc})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Description != desc {
		t.Errorf("description = %s", updated.Description)
	}
	if updated.Name != "Auditor" {
		t.Errorf("name changed on partial update: %s", updated.Name)
	}

	if err := svc.Roles.Delete(role.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Roles.Get(role.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}
