package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"shape-raycaster/internal/output"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	raw := `{"base_dir":"/work","scene_dir":"scenes","format":"png","scale":3}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseDir != "/work" || cfg.SceneDir != "scenes" || cfg.Format != "png" || cfg.Scale != 3 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Workers != 0 {
		t.Errorf("Expected unset workers to stay zero, got %d", cfg.Workers)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestResolve_Defaults(t *testing.T) {
	cfg := Config{BaseDir: "/work"}
	cfg.Resolve(Flags{})

	if cfg.OutputDir != filepath.Join("/work", "renders") {
		t.Errorf("Expected default output dir, got %q", cfg.OutputDir)
	}
	if cfg.Format != "webp" {
		t.Errorf("Expected default format webp, got %q", cfg.Format)
	}
	if cfg.Scale != 1 {
		t.Errorf("Expected default scale 1, got %d", cfg.Scale)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), cfg.Workers)
	}
	if cfg.Builtin != "mixed" {
		t.Errorf("Expected builtin fallback, got %q", cfg.Builtin)
	}
}

func TestResolve_FlagsOverrideFile(t *testing.T) {
	cfg := Config{
		BaseDir:   "/work",
		SceneDir:  "scenes",
		OutputDir: "out",
		Format:    "png",
		Scale:     2,
		Workers:   2,
	}
	cfg.Resolve(Flags{
		SceneFile: "one.json",
		Format:    ".BMP",
		Scale:     4,
	})

	if cfg.SceneFile != filepath.Join("/work", "one.json") {
		t.Errorf("Expected scene file under base dir, got %q", cfg.SceneFile)
	}
	if cfg.SceneDir != filepath.Join("/work", "scenes") {
		t.Errorf("Expected scene dir under base dir, got %q", cfg.SceneDir)
	}
	if cfg.OutputDir != filepath.Join("/work", "out") {
		t.Errorf("Expected output dir under base dir, got %q", cfg.OutputDir)
	}
	if cfg.Format != "bmp" {
		t.Errorf("Expected normalized flag format bmp, got %q", cfg.Format)
	}
	if cfg.Scale != 4 || cfg.Workers != 2 {
		t.Errorf("Expected scale 4 and workers 2, got %d and %d", cfg.Scale, cfg.Workers)
	}
	if cfg.Builtin != "" {
		t.Errorf("Expected no builtin fallback when a scene is set, got %q", cfg.Builtin)
	}
}

func TestResolve_AbsolutePathsKept(t *testing.T) {
	cfg := Config{BaseDir: "/work"}
	cfg.Resolve(Flags{OutputDir: "/tmp/renders"})
	if cfg.OutputDir != "/tmp/renders" {
		t.Errorf("Expected absolute output dir unchanged, got %q", cfg.OutputDir)
	}
}

func TestValidate(t *testing.T) {
	for _, f := range output.Formats {
		cfg := Config{Format: f}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: unexpected error %v", f, err)
		}
	}

	cfg := Config{Format: "gif"}
	if err := cfg.Validate(); !errors.Is(err, output.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}
