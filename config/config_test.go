package config

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.FPS != DefaultFPS || cfg.MaxSeconds != DefaultMaxSeconds || !cfg.Dither {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Selection() != nil {
		t.Fatalf("no selection expected by default")
	}
}

func TestSaveLoad_RoundTripClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.FPS = 42
	cfg.MaxSeconds = -1
	cfg.OutputDir = "/tmp/gifs"
	cfg.SetSelection(image.Rect(10, 20, 110, 70))
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.FPS != 9 || got.MaxSeconds != DefaultMaxSeconds || got.OutputDir != "/tmp/gifs" {
		t.Fatalf("unexpected values %+v", got)
	}
	if sel := got.Selection(); sel == nil || *sel != image.Rect(10, 20, 110, 70) {
		t.Fatalf("selection not persisted: %v", sel)
	}
	if got.MaxDuration() != 30*time.Second {
		t.Fatalf("unexpected max duration %v", got.MaxDuration())
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.FPS != DefaultFPS {
		t.Fatalf("expected defaults alongside the error, got %+v", cfg)
	}
}

func TestSetSelection_EmptyClears(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetSelection(image.Rect(0, 0, 5, 5))
	cfg.SetSelection(image.Rectangle{})
	if cfg.Selection() != nil {
		t.Fatalf("expected cleared selection")
	}
}
