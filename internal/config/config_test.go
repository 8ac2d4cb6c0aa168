package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test viewer defaults
	if cfg.Viewer.SpinDegPerSec != 30 {
		t.Errorf("expected spin 30, got %f", cfg.Viewer.SpinDegPerSec)
	}
	if cfg.Viewer.SphereRings != 24 || cfg.Viewer.SphereSegments != 48 {
		t.Errorf("expected sphere 24x48, got %dx%d", cfg.Viewer.SphereRings, cfg.Viewer.SphereSegments)
	}
	if !cfg.Viewer.NarrowIndices {
		t.Error("expected narrow_indices to be true by default")
	}
	if cfg.Viewer.Wireframe {
		t.Error("expected wireframe to be false by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	yaml := `graphics:
  width: 1920
  height: 1080
  vsync: false
viewer:
  spin_deg_per_sec: 90
  narrow_indices: false
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync false after load")
	}
	if cfg.Viewer.SpinDegPerSec != 90 {
		t.Errorf("expected spin 90, got %f", cfg.Viewer.SpinDegPerSec)
	}
	if cfg.Viewer.NarrowIndices {
		t.Error("expected narrow_indices false after load")
	}
	// Values absent from the file keep their defaults
	if cfg.Viewer.SphereRings != 24 {
		t.Errorf("expected sphere_rings default 24, got %d", cfg.Viewer.SphereRings)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
}

func TestSaveTo(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800 after round trip, got %d", loaded.Graphics.Width)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
