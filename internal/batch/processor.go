package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"shape-raycaster/internal/output"
	"shape-raycaster/internal/postprocess"
	"shape-raycaster/internal/raster"
	"shape-raycaster/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    string
	Scale     int
	Workers   int

	// RowWorkers splits each render across rows; <= 1 renders a scene on
	// its job's goroutine.
	RowWorkers int

	// Progress is the reporting interval; zero disables the reporter.
	Progress time.Duration
}

// Job is one scene to render. Exactly one of SceneFile and Builtin is set.
type Job struct {
	ID        string
	Name      string
	SceneFile string
	Builtin   string
}

// Result holds the outcome of processing one job.
type Result struct {
	Job        Job
	Image      string // path relative to the output dir
	Width      int
	Height     int
	Foreground int
	Success    bool
	Error      string
}

// FileJob creates a job for a scene file.
func FileJob(path string) Job {
	return Job{
		ID:        uuid.NewString(),
		Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		SceneFile: path,
	}
}

// BuiltinJob creates a job for a built-in scene.
func BuiltinJob(name string) Job {
	return Job{ID: uuid.NewString(), Name: name, Builtin: name}
}

// DirJobs creates one job per *.json scene in dir, sorted by name.
func DirJobs(dir string) ([]Job, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("batch: glob %s: %w", dir, err)
	}
	sort.Strings(paths)
	jobs := make([]Job, 0, len(paths))
	for _, p := range paths {
		jobs = append(jobs, FileJob(p))
	}
	return jobs, nil
}

// Unique drops jobs that render the same scene source and renames jobs
// whose names collide ("sphere", "sphere-2", ...), so no two jobs write the
// same output file. Order is preserved.
func Unique(jobs []Job) []Job {
	sources := make(map[string]bool, len(jobs))
	names := make(map[string]bool, len(jobs))
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		src := j.source()
		if sources[src] {
			continue
		}
		sources[src] = true

		name := j.Name
		for n := 2; names[name]; n++ {
			name = fmt.Sprintf("%s-%d", j.Name, n)
		}
		names[name] = true
		j.Name = name
		out = append(out, j)
	}
	return out
}

// source identifies what a job renders: the built-in name or the cleaned
// absolute scene path.
func (j Job) source() string {
	if j.Builtin != "" {
		return "builtin:" + j.Builtin
	}
	if abs, err := filepath.Abs(j.SceneFile); err == nil {
		return abs
	}
	return filepath.Clean(j.SceneFile)
}

// Run processes all jobs using a worker pool. Duplicate jobs are removed
// first (see Unique), so results may be shorter than jobs.
func Run(cfg Config, jobs []Job) []Result {
	jobs = Unique(jobs)
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

// LoadJob resolves a job into a scene document.
func LoadJob(job Job) (scene.Document, error) {
	if job.Builtin != "" {
		return scene.Builtin(job.Builtin)
	}
	if _, err := os.Stat(job.SceneFile); os.IsNotExist(err) {
		return scene.Document{}, fmt.Errorf("scene not found: %s", job.SceneFile)
	}
	return scene.Load(job.SceneFile)
}

func processJob(cfg Config, job Job) Result {
	res := Result{Job: job}

	doc, err := LoadJob(job)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	fb := raster.RenderImage(doc.Camera, doc.Scene, cfg.RowWorkers)
	res.Foreground = fb.Coverage()

	img := postprocess.Upscale(fb.Image(), cfg.Scale)
	b := img.Bounds()
	res.Width, res.Height = b.Dx(), b.Dy()

	res.Image = fmt.Sprintf("%s.%s", job.Name, output.Normalize(cfg.Format))
	if err := output.WriteFile(filepath.Join(cfg.OutputDir, res.Image), img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
