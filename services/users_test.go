package services

import (
	"errors"
	"testing"

	"github.com/opsdeck/opsdeck/types"
)

func TestUserCreateValidation(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Users.Create(CreateUserInput{Email: "x@y.test"}); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := svc.Users.Create(CreateUserInput{Name: "Dana Wu"}); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestUserCreateDefaults(t *testing.T) {
	svc := newTestServices(t)

	user, err := svc.Users.Create(CreateUserInput{Name: "Dana Wu", Email: "dana@vortex.test"})
	if err != nil {
		t.Fatal(err)
	}
	if user.Status != types.UserActive {
		t.Errorf("status = %s, want Active", user.Status)
	}
	if user.Code == "" {
		t.Error("code not assigned")
	}
}

func TestUserDeleteKeepsSnapshotsElsewhere(t *testing.T) {
	svc := newTestServices(t)
	client := mustCreateClient(t, svc, "Vortex Labs")
	manager := mustCreateUser(t, svc, "Dana Wu", "dana@vortex.test")

	project, err := svc.Projects.Create(CreateProjectInput{
		Name:             "Telemetry Revamp",
		ClientID:         client.ID,
		ProjectManagerID: manager.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Users.Delete(manager.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Users.Get(manager.ID); !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}

	// No cascade: the project still shows the deleted user's display
	// fields.
	got, err := svc.Projects.Get(project.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ProjectManager.Name != "Dana Wu" {
		t.Errorf("manager snapshot = %+v, want the deleted user's fields", got.ProjectManager)
	}
}
