package services

import (
	"testing"
	"time"

	"github.com/opsdeck/opsdeck/seed"
	"github.com/opsdeck/opsdeck/storage"
)

// testNow is a Wednesday; the Monday of its week is 2026-03-02.
var testNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newTestServices(t *testing.T) *Services {
	t.Helper()
	return New(storage.NewMemory(), WithClock(func() time.Time { return testNow }))
}

func TestCollectionsStartFromSeedData(t *testing.T) {
	svc := newTestServices(t)

	for name, got := range map[string]int{
		"clients":    svc.Clients.col.Count(),
		"projects":   svc.Projects.col.Count(),
		"tasks":      svc.Tasks.col.Count(),
		"users":      svc.Users.col.Count(),
		"timesheets": svc.Timesheets.col.Count(),
		"roles":      svc.Roles.col.Count(),
		"settings":   svc.Settings.col.Count(),
	} {
		if got == 0 {
			t.Errorf("%s collection is empty, want seed data", name)
		}
	}
}

func TestResetAllRestoresSeed(t *testing.T) {
	svc := newTestServices(t)

	if _, err := svc.Clients.Create(CreateClientInput{Name: "Extra Co"}); err != nil {
		t.Fatal(err)
	}
	if err := svc.ResetAll(); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	if got, want := svc.Clients.col.Count(), len(seed.Clients()); got != want {
		t.Errorf("clients count = %d after reset, want %d", got, want)
	}
}

func TestSequentialCodes(t *testing.T) {
	svc := newTestServices(t)

	first, err := svc.Clients.Create(CreateClientInput{Name: "First Co"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Clients.Create(CreateClientInput{Name: "Second Co"})
	if err != nil {
		t.Fatal(err)
	}

	// Seed ships 4 clients starting at CPL-101.
	if first.Code != "CPL-105" {
		t.Errorf("first code = %s, want CPL-105", first.Code)
	}
	if second.Code != "CPL-106" {
		t.Errorf("second code = %s, want CPL-106", second.Code)
	}
}

func TestCodeNumbersCanRepeatAfterDelete(t *testing.T) {
	svc := newTestServices(t)

	created, err := svc.Clients.Create(CreateClientInput{Name: "Short-lived Co"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.Clients.Delete(created.ID); err != nil {
		t.Fatal(err)
	}
	again, err := svc.Clients.Create(CreateClientInput{Name: "Replacement Co"})
	if err != nil {
		t.Fatal(err)
	}

	if again.Code != created.Code {
		t.Errorf("code after delete = %s, want reuse of %s", again.Code, created.Code)
	}
	if again.ID == created.ID {
		t.Error("ids must stay unique even when codes repeat")
	}
}
