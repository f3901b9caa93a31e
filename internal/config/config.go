package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	OutputDir   string `json:"output_dir"`
	PatternPath string `json:"pattern_path"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Supersample int     `json:"supersample"`
	Exposure    float64 `json:"exposure"`
	Tonemap     bool    `json:"tonemap"`
	Seed        uint64  `json:"seed"`

	// Animation
	FPS      float64 `json:"fps"`
	Frames   int     `json:"frames"`
	StartMS  float64 `json:"start_ms"`
	Duration float64 `json:"duration_ms"`

	// Output
	Workers int    `json:"workers"`
	Listen  string `json:"listen"`
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

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	PatternPath string
	Width       int
	Height      int
	Supersample int
	Workers     int
	FPS         float64
	Frames      int
	Seed        uint64
	Listen      string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.PatternPath != "" {
		c.PatternPath = flags.PatternPath
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Listen != "" {
		c.Listen = flags.Listen
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.PatternPath != "" && !filepath.IsAbs(c.PatternPath) {
		if abs, err := filepath.Abs(c.PatternPath); err == nil {
			c.PatternPath = abs
		}
	}
	if c.Width <= 0 {
		c.Width = 480
	}
	if c.Height <= 0 {
		c.Height = 270
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Exposure <= 0 {
		c.Exposure = 1
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	// A duration, when given, decides the frame count.
	if c.Frames <= 0 && c.Duration > 0 {
		c.Frames = int(c.Duration/1000*c.FPS + 0.5)
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Listen == "" {
		c.Listen = ":8080"
	}
}

// Validate reports settings that cannot be rendered.
func (c *Config) Validate() error {
	if c.Width > 8192 || c.Height > 8192 {
		return fmt.Errorf("config: output %dx%d too large", c.Width, c.Height)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d too large (max 8)", c.Supersample)
	}
	if c.StartMS < 0 {
		return fmt.Errorf("config: negative start time %v", c.StartMS)
	}
	return nil
}
