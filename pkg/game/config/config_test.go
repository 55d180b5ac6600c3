package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if cfg.Renderer != want.Renderer || cfg.ZoomLevel != want.ZoomLevel {
		t.Errorf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Renderer = "tui"
	cfg.Locale = "de"
	if err := cfg.SetWindowSize(1280, 720); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Renderer != "tui" || loaded.Locale != "de" {
		t.Errorf("reloaded %+v, want renderer=tui locale=de", loaded)
	}
	if loaded.WindowWidth != 1280 || loaded.WindowHeight != 720 {
		t.Errorf("window = %dx%d, want 1280x720", loaded.WindowWidth, loaded.WindowHeight)
	}
}

func TestSetZoomLevelPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.SetZoomLevel("Region"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.ZoomLevel != "Region" {
		t.Errorf("zoom = %q, want Region", loaded.ZoomLevel)
	}
}

func TestBindingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Bindings = map[string]string{"Pan North": "k"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Bindings["Pan North"] != "k" {
		t.Errorf("bindings = %v, want Pan North bound to k", loaded.Bindings)
	}
}

func TestLoadCorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error for corrupt yaml")
	}
}
