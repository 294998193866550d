package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Backend != "file" {
		t.Errorf("Backend = %s, want file", cfg.Backend)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.LogLevel)
	}
	if cfg.Format != "table" {
		t.Errorf("Format = %s, want table", cfg.Format)
	}
	if cfg.Latency != 0 {
		t.Errorf("Latency = %v, want 0", cfg.Latency)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir is empty")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OPSDECK_BACKEND", "memory")
	t.Setenv("OPSDECK_LOG_LEVEL", "debug")
	t.Setenv("OPSDECK_LATENCY", "150ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Backend != "memory" {
		t.Errorf("Backend = %s, want memory", cfg.Backend)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
	if cfg.Latency != 150*time.Millisecond {
		t.Errorf("Latency = %v, want 150ms", cfg.Latency)
	}
}

func TestExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opsdeck.yaml")
	content := "backend: sqlite\nformat: json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OPSDECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "sqlite" {
		t.Errorf("Backend = %s, want sqlite", cfg.Backend)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %s, want json", cfg.Format)
	}
}

func TestExplicitConfigFileMustExist(t *testing.T) {
	t.Setenv("OPSDECK_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}
