package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Mux != "" {
		t.Errorf("Mux: got %q, want auto-detect (empty)", cfg.Mux)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, "dark")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("mux: tmux\ntheme: light\notel_endpoint: http://localhost:4318\n")
	if err := os.WriteFile(filepath.Join(dir, ".pane-pilot.yaml"), content, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Mux != "tmux" {
		t.Errorf("Mux: got %q, want %q", cfg.Mux, "tmux")
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, "light")
	}
	if cfg.OTELEndpoint != "http://localhost:4318" {
		t.Errorf("OTELEndpoint: got %q", cfg.OTELEndpoint)
	}
	if cfg.ConfigFile != ".pane-pilot.yaml" {
		t.Errorf("ConfigFile: got %q", cfg.ConfigFile)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".pane-pilot.yaml"), []byte("mux: tmux\ntheme: light\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	clearEnv(t)
	t.Setenv("PANE_PILOT_THEME", "dark")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme: got %q, want env to win", cfg.Theme)
	}
	if cfg.Mux != "tmux" {
		t.Errorf("Mux: got %q, want file value to survive", cfg.Mux)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".pane-pilot.yaml"), []byte("mux: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error for invalid YAML")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)
	t.Setenv("PANE_PILOT_MUX", "tmux")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Mux != "tmux" {
		t.Errorf("Mux: got %q, want env value", cfg.Mux)
	}
	if cfg.ConfigFile != "" {
		t.Errorf("ConfigFile: got %q, want empty", cfg.ConfigFile)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PANE_PILOT_MUX",
		"PANE_PILOT_THEME",
		"OTEL_EXPORTER_OTLP_ENDPOINT",
		"OTEL_EXPORTER_OTLP_HEADERS",
	} {
		t.Setenv(key, "")
	}
}
