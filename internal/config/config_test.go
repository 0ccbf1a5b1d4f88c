package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "MOJO_DEBUG_ADDR", "MOJO_SEED", "MOJO_ROSTER", "MOJO_CLOCK_SEED", "MOJO_DEBOUNCE_MS"} {
		os.Unsetenv(k)
	}
	cfg := Load()
	if cfg.Env != "dev" {
		t.Fatalf("Env = %q", cfg.Env)
	}
	if cfg.DebugAddr != "" {
		t.Fatalf("DebugAddr = %q, want disabled", cfg.DebugAddr)
	}
	if !cfg.Seed {
		t.Fatal("Seed defaults off")
	}
	if cfg.Debounce != 300*time.Millisecond {
		t.Fatalf("Debounce = %v", cfg.Debounce)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("MOJO_SEED", "false")
	t.Setenv("MOJO_CLOCK_SEED", "12345")
	t.Setenv("MOJO_DEBOUNCE_MS", "50")

	cfg := Load()
	if cfg.Env != "prod" || cfg.Seed || cfg.ClockSeed != 12345 || cfg.Debounce != 50*time.Millisecond {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	data := "usernames:\n  - Zaphod\n  - Marvin\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := LoadRoster(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "Zaphod" || names[1] != "Marvin" {
		t.Fatalf("roster = %v", names)
	}
}

func TestLoadRosterErrors(t *testing.T) {
	if _, err := LoadRoster(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file did not error")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("usernames: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRoster(empty); err == nil {
		t.Fatal("empty roster did not error")
	}
}
