package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"shape-raycaster/internal/output"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir   string `json:"base_dir"`
	SceneFile string `json:"scene_file"`
	SceneDir  string `json:"scene_dir"`
	Builtin   string `json:"builtin"`
	OutputDir string `json:"output_dir"`

	// Render settings
	Format  string `json:"format"`
	Scale   int    `json:"scale"`
	Workers int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.SceneDir != "" {
		c.SceneDir = flags.SceneDir
	}
	if flags.Builtin != "" {
		c.Builtin = flags.Builtin
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Resolve relative paths against base dir
	c.SceneFile = resolvePath(c.BaseDir, c.SceneFile)
	c.SceneDir = resolvePath(c.BaseDir, c.SceneDir)
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "renders")
	} else {
		c.OutputDir = resolvePath(c.BaseDir, c.OutputDir)
	}

	// Defaults for render settings
	c.Format = output.Normalize(c.Format)
	if c.Format == "" {
		c.Format = output.Formats[0]
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.SceneFile == "" && c.SceneDir == "" && c.Builtin == "" {
		c.Builtin = "mixed"
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	for _, f := range output.Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("config: format %q: %w", c.Format, output.ErrUnknownFormat)
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneFile string
	SceneDir  string
	Builtin   string
	OutputDir string
	Format    string
	Scale     int
	Workers   int
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) || base == "" {
		return p
	}
	return filepath.Join(base, p)
}
