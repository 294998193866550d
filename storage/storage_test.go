package storage

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// backendContract runs the behavior every backend must share.
func backendContract(t *testing.T, b Backend) {
	t.Helper()

	// Missing key reads as absent, not as an error.
	if _, ok, err := b.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := b.Set("alpha", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := b.Get("alpha")
	if err != nil || !ok {
		t.Fatalf("Get(alpha) = ok=%v err=%v, want present", ok, err)
	}
	if string(data) != `[{"id":"1"}]` {
		t.Errorf("Get(alpha) = %q", data)
	}

	// Overwrite replaces the payload.
	if err := b.Set("alpha", []byte(`[]`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	data, _, _ = b.Get("alpha")
	if string(data) != `[]` {
		t.Errorf("after overwrite Get(alpha) = %q", data)
	}

	if err := b.Set("beta", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	keys, err := b.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 2 || keys[0] != "alpha" || keys[1] != "beta" {
		t.Errorf("Keys = %v, want [alpha beta]", keys)
	}

	if err := b.Delete("alpha"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := b.Get("alpha"); ok {
		t.Error("alpha still present after Delete")
	}
	// Deleting a missing key is a no-op.
	if err := b.Delete("alpha"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestMemoryBackend(t *testing.T) {
	backendContract(t, NewMemory())
}

func TestMemoryBackendCopiesPayloads(t *testing.T) {
	m := NewMemory()
	payload := []byte("original")
	if err := m.Set("k", payload); err != nil {
		t.Fatal(err)
	}
	payload[0] = 'X'

	data, _, _ := m.Get("k")
	if string(data) != "original" {
		t.Errorf("stored payload mutated: %q", data)
	}
}

func TestFileBackend(t *testing.T) {
	b, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	backendContract(t, b)
}

func TestFileBackendLayout(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Set("clients", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}

	// One JSON file per slot, no leftover temp file.
	if _, err := os.Stat(filepath.Join(dir, "clients.json")); err != nil {
		t.Errorf("slot file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "clients.json.tmp")); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestFileBackendCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := NewFile(dir); err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestSQLiteBackend(t *testing.T) {
	b, err := NewSQLite(filepath.Join(t.TempDir(), "slots.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = b.Close() }()
	backendContract(t, b)
}

func TestSQLiteBackendReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.db")

	b, err := NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Set("clients", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}

	b, err = NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = b.Close() }()
	data, ok, err := b.Get("clients")
	if err != nil || !ok {
		t.Fatalf("Get after reopen = ok=%v err=%v", ok, err)
	}
	if string(data) != `[{"id":"1"}]` {
		t.Errorf("Get after reopen = %q", data)
	}
}
