// Package termview previews the room in a terminal using half-block cells:
// every character cell shows two vertically stacked pixels.
package termview

import (
	"context"
	"image"

	"spotlight-room/internal/animation"
	"spotlight-room/internal/camera"
	"spotlight-room/internal/postprocess"
	"spotlight-room/internal/raster"
	"spotlight-room/internal/scene"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// View draws animation frames onto a tcell screen. The screen must be
// initialised by the caller, who also owns Fini.
type View struct {
	// Supersample renders at a multiple of the cell grid and scales down,
	// trading speed for smoother edges.
	Supersample int

	screen   tcell.Screen
	scene    *scene.Scene
	cam      *camera.Camera
	renderer *raster.Renderer
	driver   *animation.Driver

	cols, rows int
	stopped    bool
	events     chan tcell.Event
}

// New creates a view sized to the current screen.
func New(screen tcell.Screen, s *scene.Scene, opts raster.Options) *View {
	v := &View{
		screen:   screen,
		scene:    s,
		renderer: raster.NewRenderer(opts),
		events:   make(chan tcell.Event, 64),
	}
	v.cols, v.rows = screen.Size()
	v.cam = camera.New(v.cols, v.rows*2)
	v.driver = animation.NewDriver(s, animation.PresenterFunc(v.present))
	return v
}

// HandleEvent applies one terminal event. It reports false once the view
// has been asked to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			v.stopped = true
		}
	case *tcell.EventResize:
		v.resize()
	}
	return !v.stopped
}

func (v *View) resize() {
	cols, rows := v.screen.Size()
	if cols == v.cols && rows == v.rows {
		return
	}
	v.cols, v.rows = cols, rows
	v.cam.SetAspect(cols, rows*2)
	v.screen.Clear()
}

// Running reports whether the view should keep animating. Pending terminal
// events are applied first, so all view state stays on the render goroutine.
func (v *View) Running() bool {
	for {
		select {
		case ev := <-v.events:
			v.HandleEvent(ev)
		default:
			return !v.stopped
		}
	}
}

// Step renders the frame at time t.
func (v *View) Step(ctx context.Context, t float64) error {
	return v.driver.Step(ctx, t)
}

// Run animates at fps until the user quits or ctx is cancelled.
func (v *View) Run(ctx context.Context, fps float64) error {
	go v.pollEvents(ctx)

	sched := animation.NewRealTime(fps)
	defer sched.Stop()
	return v.driver.Run(ctx, sched, v.Running)
}

func (v *View) pollEvents(ctx context.Context) {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case v.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (v *View) present(ctx context.Context, f animation.Frame) error {
	if v.cols <= 0 || v.rows <= 0 {
		return nil
	}
	w, h := v.cols, v.rows*2
	var img *image.NRGBA
	if ss := v.Supersample; ss > 1 {
		img = postprocess.Fit(v.renderer.Render(v.scene, v.cam, w*ss, h*ss), w, h)
	} else {
		img = v.renderer.Render(v.scene, v.cam, w, h)
	}
	v.draw(img)
	v.screen.Show()
	return nil
}

// draw maps pixel rows 2y and 2y+1 onto the fore- and background of cell row y.
func (v *View) draw(img *image.NRGBA) {
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			top := pixel(img, x, 2*y)
			bottom := pixel(img, x, 2*y+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func pixel(img *image.NRGBA, x, y int) tcell.Color {
	c := img.NRGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
