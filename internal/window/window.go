// Package window shows the animated room in a desktop window.
package window

import (
	"context"
	"image"
	"time"

	"spotlight-room/internal/animation"
	"spotlight-room/internal/camera"
	"spotlight-room/internal/raster"
	"spotlight-room/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures the window.
type Options struct {
	Title  string
	Width  int
	Height int
	// Scale divides the window size to get the render size; the frame is
	// stretched back up when drawn.
	Scale  int
	Render raster.Options
}

// Run opens a window and animates the scene until it is closed.
// It blocks until the window closes.
func Run(s *scene.Scene, opts Options) error {
	g := NewGame(s, opts)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

// Game implements ebiten.Game. Update is the per-refresh callback: it steps
// the animation with the milliseconds elapsed since the first update.
type Game struct {
	scene    *scene.Scene
	cam      *camera.Camera
	renderer *raster.Renderer
	driver   *animation.Driver
	scale    int

	now   func() time.Time
	start time.Time

	width, height int
	frame         *image.NRGBA
	img           *ebiten.Image
}

// NewGame creates the game for a window of the given options.
func NewGame(s *scene.Scene, opts Options) *Game {
	scale := max(opts.Scale, 1)
	g := &Game{
		scene:    s,
		renderer: raster.NewRenderer(opts.Render),
		scale:    scale,
		now:      time.Now,
		width:    max(opts.Width/scale, 1),
		height:   max(opts.Height/scale, 1),
	}
	g.cam = camera.New(g.width, g.height)
	g.driver = animation.NewDriver(s, animation.PresenterFunc(g.present))
	return g
}

func (g *Game) Update() error {
	now := g.now()
	if g.start.IsZero() {
		g.start = now
	}
	t := float64(now.Sub(g.start)) / float64(time.Millisecond)
	return g.driver.Step(context.Background(), t)
}

func (g *Game) present(ctx context.Context, f animation.Frame) error {
	g.frame = g.renderer.Render(g.scene, g.cam, g.width, g.height)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	b := g.frame.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(g.frame.Pix)
	screen.DrawImage(g.img, nil)
}

// Layout follows the window size, keeping the camera aspect in sync.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth/g.scale, 1)
	h := max(outsideHeight/g.scale, 1)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.cam.SetAspect(w, h)
	}
	return g.width, g.height
}
