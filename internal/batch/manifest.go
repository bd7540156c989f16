package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Scene      string `json:"scene"`
	Image      string `json:"image"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Foreground int    `json:"foreground_pixels"`
}

// WriteManifest writes manifest.json for the successful results.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		src := r.Job.SceneFile
		if src == "" {
			src = "builtin:" + r.Job.Builtin
		}
		entries = append(entries, ManifestEntry{
			ID:         r.Job.ID,
			Name:       r.Job.Name,
			Scene:      src,
			Image:      r.Image,
			Width:      r.Width,
			Height:     r.Height,
			Foreground: r.Foreground,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) ([]ManifestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
