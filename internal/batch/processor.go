package batch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"spotlight-room/internal/animation"
	"spotlight-room/internal/camera"
	"spotlight-room/internal/postprocess"
	"spotlight-room/internal/raster"
	"spotlight-room/internal/scene"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Scene       *scene.Scene // template, cloned per worker
	Orbit       animation.Orbit
	Width       int
	Height      int
	Supersample int
	Render      raster.Options
	Workers     int
	Progress    bool
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int
	T       float64
	Target  [3]float64
	Image   string // path relative to the output directory
	Success bool
	Error   string
}

// FrameName is the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("%05d.webp", i)
}

// Times drains a scheduler into a list of frame timestamps.
func Times(ctx context.Context, s animation.Scheduler) ([]float64, error) {
	var ts []float64
	for {
		t, err := s.Next(ctx)
		if errors.Is(err, animation.ErrSchedulerDone) {
			return ts, nil
		}
		if err != nil {
			return ts, err
		}
		ts = append(ts, t)
	}
}

// Run renders one frame per timestamp using a worker pool. Every frame is a
// pure function of its timestamp, so workers own independent scene copies and
// frames may finish in any order.
func Run(ctx context.Context, cfg Config, times []float64) []Result {
	total := len(times)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
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
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wk := newWorker(cfg)
			for idx := range frameChan {
				results[idx] = wk.render(ctx, idx, times[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
send:
	for i := range times {
		select {
		case frameChan <- i:
		case <-ctx.Done():
			for j := i; j < total; j++ {
				results[j] = Result{Index: j, T: times[j], Error: ctx.Err().Error()}
			}
			break send
		}
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// worker owns a scene copy, a renderer and a driver.
type worker struct {
	cfg      Config
	driver   *animation.Driver
	renderer *raster.Renderer
	cam      *camera.Camera
	scene    *scene.Scene
	img      *image.NRGBA
}

func newWorker(cfg Config) *worker {
	ss := max(cfg.Supersample, 1)
	w := &worker{
		cfg:      cfg,
		renderer: raster.NewRenderer(cfg.Render),
		cam:      camera.New(cfg.Width*ss, cfg.Height*ss),
		scene:    cfg.Scene.Clone(),
	}
	w.driver = animation.NewDriver(w.scene, animation.PresenterFunc(w.present))
	if cfg.Orbit != (animation.Orbit{}) {
		w.driver.Orbit = cfg.Orbit
	}
	return w
}

func (w *worker) present(ctx context.Context, f animation.Frame) error {
	ss := max(w.cfg.Supersample, 1)
	img := w.renderer.Render(w.scene, w.cam, w.cfg.Width*ss, w.cfg.Height*ss)

	// Post-processing: supersample downsample
	if ss > 1 {
		img = postprocess.Downsample(img, w.cfg.Width, w.cfg.Height)
	}
	w.img = img
	return nil
}

func (w *worker) render(ctx context.Context, idx int, t float64) Result {
	res := Result{Index: idx, T: t, Image: FrameName(idx)}
	if err := ctx.Err(); err != nil {
		res.Error = err.Error()
		return res
	}

	if err := w.driver.Step(ctx, t); err != nil {
		res.Error = err.Error()
		return res
	}
	target := w.driver.Last().Target
	res.Target = [3]float64{target[0], target[1], target[2]}

	// Save as WebP
	outPath := filepath.Join(w.cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, w.img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
