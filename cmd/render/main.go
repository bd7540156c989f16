package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shape-raycaster/internal/batch"
	"shape-raycaster/internal/config"
	"shape-raycaster/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Render a single scene JSON file")
	sceneDir := flag.String("scenes", "", "Render every *.json scene in this directory")
	builtin := flag.String("builtin", "", "Render a built-in scene ("+strings.Join(scene.BuiltinNames(), ", ")+")")
	outputDir := flag.String("output", "", "Output directory (default: ./renders)")
	format := flag.String("format", "", "Image format: webp, png, tga, bmp (default: webp)")
	scale := flag.Int("scale", 0, "Integer upscale factor for the written image (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneFile: *sceneFile,
		SceneDir:  *sceneDir,
		Builtin:   *builtin,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
		Workers:   *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Collect jobs
	var jobs []batch.Job
	if cfg.SceneDir != "" {
		dirJobs, err := batch.DirJobs(cfg.SceneDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		jobs = append(jobs, dirJobs...)
	}
	if cfg.SceneFile != "" {
		jobs = append(jobs, batch.FileJob(cfg.SceneFile))
	}
	if cfg.Builtin != "" {
		jobs = append(jobs, batch.BuiltinJob(cfg.Builtin))
	}

	// One output file per scene: drop repeats, suffix colliding names.
	jobs = batch.Unique(jobs)

	if len(jobs) == 0 {
		fmt.Println("No scenes to render.")
		os.Exit(0)
	}

	// A single scene gets all workers across its rows.
	batchCfg := batch.Config{
		OutputDir:  cfg.OutputDir,
		Format:     cfg.Format,
		Scale:      cfg.Scale,
		Workers:    cfg.Workers,
		RowWorkers: 1,
		Progress:   2 * time.Second,
	}
	if len(jobs) == 1 {
		batchCfg.Workers = 1
		batchCfg.RowWorkers = cfg.Workers
	}

	fmt.Printf("Shape ray caster → %s\n", strings.ToUpper(cfg.Format))
	fmt.Printf("Scenes: %d, Workers: %d\n", len(jobs), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batchCfg, jobs)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.2fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s: %dx%d, %d foreground px → %s\n", r.Job.Name, r.Width, r.Height, r.Foreground, r.Image)
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Job.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
