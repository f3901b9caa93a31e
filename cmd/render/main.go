package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"spotlight-room/internal/animation"
	"spotlight-room/internal/batch"
	"spotlight-room/internal/config"
	"spotlight-room/internal/raster"
	"spotlight-room/internal/scene"
	"spotlight-room/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	pattern := flag.String("pattern", "", "Image to project instead of the checkerboard (png, jpg, tga)")
	width := flag.Int("width", 0, "Frame width in pixels (default: 480)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 270)")
	supersample := flag.Int("ss", 0, "Supersampling factor (default: 2)")
	fps := flag.Float64("fps", 0, "Frames per second of animation time (default: 30)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	seed := flag.Uint64("seed", 0, "Noise seed for reproducible textures (default: random)")
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
		OutputDir:   *outputDir,
		PatternPath: *pattern,
		Width:       *width,
		Height:      *height,
		Supersample: *supersample,
		Workers:     *workers,
		FPS:         *fps,
		Frames:      *frames,
		Seed:        *seed,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Build scene
	texCache := texture.NewDefaultCache(texture.Options{Seed: cfg.Seed, PatternPath: cfg.PatternPath})
	room, err := scene.Build(texCache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Textures: %v\n", texCache.Names())

	times, err := batch.Times(ctx, animation.NewFixedStep(cfg.StartMS, cfg.FPS, cfg.Frames))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Spotlight room -> WebP frames\n")
	fmt.Printf("Frames: %d at %.0f fps, %dx%d (ss %d), Workers: %d\n",
		len(times), cfg.FPS, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Scene:       room,
		Orbit:       animation.DefaultOrbit(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Render:      raster.Options{Exposure: cfg.Exposure, Tonemap: cfg.Tonemap},
		Workers:     cfg.Workers,
		Progress:    true,
	}

	results := batch.Run(ctx, batchCfg, times)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(times))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s (t=%.0f): %s\n", e.Image, e.T, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, cfg.Width, cfg.Height, cfg.FPS, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
