package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SheetsDir != "." {
		t.Errorf("SheetsDir = %q, want %q", cfg.SheetsDir, ".")
	}
	if cfg.AssetsDir != "./assets" {
		t.Errorf("AssetsDir = %q, want %q", cfg.AssetsDir, "./assets")
	}
	if cfg.ResourcesDir != "./resources" {
		t.Errorf("ResourcesDir = %q, want %q", cfg.ResourcesDir, "./resources")
	}
	if cfg.MaxFrameCount != 0 {
		t.Errorf("MaxFrameCount = %d, want 0 (engine default)", cfg.MaxFrameCount)
	}
	if cfg.WatchDebounceMS != 500 {
		t.Errorf("WatchDebounceMS = %d, want 500", cfg.WatchDebounceMS)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AssetsDir != "./assets" {
		t.Errorf("AssetsDir = %q, want default", cfg.AssetsDir)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheetpack.yml")
	content := `sheets_dir: ./art/sheets
assets_dir: ./build/assets
max_frame_count: 32
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SheetsDir != "./art/sheets" {
		t.Errorf("SheetsDir = %q, want %q", cfg.SheetsDir, "./art/sheets")
	}
	if cfg.AssetsDir != "./build/assets" {
		t.Errorf("AssetsDir = %q, want %q", cfg.AssetsDir, "./build/assets")
	}
	if cfg.MaxFrameCount != 32 {
		t.Errorf("MaxFrameCount = %d, want 32", cfg.MaxFrameCount)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	// Unset fields fall back to defaults.
	if cfg.ResourcesDir != "./resources" {
		t.Errorf("ResourcesDir = %q, want default", cfg.ResourcesDir)
	}
}

func TestLoadClampsFrameCap(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected int
	}{
		{"negative cap", "max_frame_count: -5", 0},
		{"oversized cap", "max_frame_count: 100000", math.MaxUint16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sheetpack.yml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.MaxFrameCount != tt.expected {
				t.Errorf("MaxFrameCount = %d, want %d", cfg.MaxFrameCount, tt.expected)
			}
		})
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheetpack.yml")
	if err := os.WriteFile(path, []byte("sheets_dir: [unbalanced"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for invalid yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sheetpack.yml")

	cfg := DefaultConfig()
	cfg.MaxFrameCount = 48
	cfg.ColorTheme = "dark"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.MaxFrameCount != 48 {
		t.Errorf("MaxFrameCount = %d, want 48", loaded.MaxFrameCount)
	}
	if loaded.ColorTheme != "dark" {
		t.Errorf("ColorTheme = %q, want %q", loaded.ColorTheme, "dark")
	}
}
