package raster

import (
	"math"
	"testing"

	"spotlight-room/internal/camera"
)

// t where the orbit point is inside the room at angle 5π/4.
var insideT = 1250 * math.Pi

func TestRenderDiskVisible(t *testing.T) {
	const w, h = 160, 90
	s := testScene(t, insideT)
	cam := camera.New(w, h)

	img := NewRenderer(Options{}).Render(s, cam, w, h)
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("bounds = %v", b)
	}

	clip := cam.Clip(s.Handles.Disk.Position)
	x := int((clip[0]/clip[3]*0.5 + 0.5) * w)
	y := int((0.5 - clip[1]/clip[3]*0.5) * h)
	c := img.NRGBAAt(x, y)
	if int(c.G) < int(c.R)+20 || int(c.G) < int(c.B)+20 {
		t.Fatalf("disk pixel (%d,%d) = %v, want green", x, y, c)
	}
}

func TestRenderOpaqueAndDeterministic(t *testing.T) {
	const w, h = 64, 36
	cam := camera.New(w, h)

	a := NewRenderer(Options{}).Render(testScene(t, 1000), cam, w, h)
	b := NewRenderer(Options{}).Render(testScene(t, 1000), cam, w, h)

	lit := 0
	for i := 0; i < len(a.Pix); i += 4 {
		if a.Pix[i+3] != 255 {
			t.Fatalf("pixel %d not opaque", i/4)
		}
		if a.Pix[i] != b.Pix[i] || a.Pix[i+1] != b.Pix[i+1] || a.Pix[i+2] != b.Pix[i+2] {
			t.Fatalf("pixel %d differs between identical renders", i/4)
		}
		if a.Pix[i+1] > 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("image is completely black")
	}
}

func TestRenderFrameReusesBuffer(t *testing.T) {
	s := testScene(t, 0)
	r := NewRenderer(Options{Tonemap: true, Exposure: 2})
	cam := camera.New(32, 32)
	fb1 := r.RenderFrame(s, cam, 32, 32)
	fb2 := r.RenderFrame(s, cam, 32, 32)
	if fb1 != fb2 {
		t.Fatal("frame buffer not reused for identical size")
	}
	if fb3 := r.RenderFrame(s, cam, 16, 16); fb3 == fb1 || fb3.Width != 16 {
		t.Fatal("frame buffer not reallocated on resize")
	}
}
