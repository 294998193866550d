package services

import (
	"errors"
	"testing"

	"github.com/opsdeck/opsdeck/query"
	"github.com/opsdeck/opsdeck/types"
)

func TestClientCreateDefaults(t *testing.T) {
	svc := newTestServices(t)

	client, err := svc.Clients.Create(CreateClientInput{Name: "Vortex Labs"})
	if err != nil {
		t.Fatal(err)
	}

	if client.ID == "" {
		t.Error("id not assigned")
	}
	if client.Status != types.ClientActive {
		t.Errorf("status = %s, want Active", client.Status)
	}
	if !client.OnboardingDate.Equal(testNow) {
		t.Errorf("onboarding date = %v, want clock time", client.OnboardingDate)
	}
	if !client.CreatedAt.Equal(testNow) || !client.UpdatedAt.Equal(testNow) {
		t.Errorf("timestamps = %v/%v, want clock time", client.CreatedAt, client.UpdatedAt)
	}
}

func TestClientCreateRequiresName(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Clients.Create(CreateClientInput{}); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestClientUpdateIsPartial(t *testing.T) {
	svc := newTestServices(t)
	created, err := svc.Clients.Create(CreateClientInput{Name: "Vortex Labs", Industry: "Research"})
	if err != nil {
		t.Fatal(err)
	}

	name := "Vortex Holdings"
	updated, err := svc.Clients.Update(created.ID, UpdateClientInput{Name: &name})
	if err != nil {
		t.Fatal(err)
	}

	if updated.Name != "Vortex Holdings" {
		t.Errorf("name = %s", updated.Name)
	}
	if updated.Industry != "Research" {
		t.Errorf("industry changed on partial update: %s", updated.Industry)
	}
}

func TestClientUpdateNotFound(t *testing.T) {
	svc := newTestServices(t)

	name := "Nobody"
	if _, err := svc.Clients.Update("99", UpdateClientInput{Name: &name}); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("Update(99) = %v, want ErrNotFound", err)
	}
}

func TestClientStatusAllowsAnyTransition(t *testing.T) {
	svc := newTestServices(t)
	created, err := svc.Clients.Create(CreateClientInput{Name: "Vortex Labs"})
	if err != nil {
		t.Fatal(err)
	}

	client, err := svc.Clients.SetStatus(created.ID, types.ClientInactive)
	if err != nil {
		t.Fatal(err)
	}
	if client.Status != types.ClientInactive {
		t.Errorf("status = %s, want Inactive", client.Status)
	}

	client, err = svc.Clients.SetStatus(created.ID, types.ClientActive)
	if err != nil {
		t.Fatal(err)
	}
	if client.Status != types.ClientActive {
		t.Errorf("status = %s, want Active", client.Status)
	}
}

func TestClientContacts(t *testing.T) {
	svc := newTestServices(t)
	created, err := svc.Clients.Create(CreateClientInput{Name: "Vortex Labs"})
	if err != nil {
		t.Fatal(err)
	}

	client, err := svc.Clients.AddContact(created.ID, ContactInput{
		Name:  "Dana Wu",
		Email: "dana@vortex.test",
		Role:  "CTO",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(client.Contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(client.Contacts))
	}
	contact := client.Contacts[0]
	if contact.ID == "" {
		t.Error("contact id not assigned")
	}

	client, err = svc.Clients.UpdateContact(created.ID, contact.ID, ContactInput{
		Name:  "Dana Wu",
		Email: "dana.wu@vortex.test",
	})
	if err != nil {
		t.Fatal(err)
	}
	if client.Contacts[0].Email != "dana.wu@vortex.test" {
		t.Errorf("contact email = %s", client.Contacts[0].Email)
	}

	client, err = svc.Clients.RemoveContact(created.ID, contact.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(client.Contacts) != 0 {
		t.Errorf("contacts = %d after remove, want 0", len(client.Contacts))
	}
}

func TestClientContactNotFound(t *testing.T) {
	svc := newTestServices(t)
	created, err := svc.Clients.Create(CreateClientInput{Name: "Vortex Labs"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Clients.RemoveContact(created.ID, "missing"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("RemoveContact = %v, want ErrNotFound", err)
	}
	if _, err := svc.Clients.UpdateContact(created.ID, "missing", ContactInput{Name: "X"}); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("UpdateContact = %v, want ErrNotFound", err)
	}
}

func TestClientListFiltersByStatus(t *testing.T) {
	svc := newTestServices(t)

	page := svc.Clients.List(query.Options{Filters: map[string]any{"status": "Inactive"}})
	if page.Total == 0 {
		t.Fatal("seed data has no inactive client")
	}
	for _, c := range page.Data {
		if c.Status != types.ClientInactive {
			t.Errorf("client %s has status %s, want Inactive", c.Code, c.Status)
		}
	}
}
