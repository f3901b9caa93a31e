package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index  int        `json:"index"`
	TimeMS float64    `json:"t_ms"`
	Target [3]float64 `json:"target"`
	Image  string     `json:"image"`
}

// Manifest describes a rendered frame sequence.
type Manifest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	FPS    float64         `json:"fps"`
	Frames []ManifestEntry `json:"frames"`
}

// WriteManifest writes manifest.json listing the successfully rendered frames.
func WriteManifest(path string, width, height int, fps float64, results []Result) error {
	m := Manifest{Width: width, Height: height, FPS: fps, Frames: []ManifestEntry{}}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Index:  r.Index,
			TimeMS: r.T,
			Target: r.Target,
			Image:  r.Image,
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
