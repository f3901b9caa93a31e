package raster

import (
	"math"
	"testing"

	"spotlight-room/internal/animation"
	"spotlight-room/internal/mathutil"
	"spotlight-room/internal/scene"
	"spotlight-room/internal/texture"
)

func testScene(t *testing.T, ms float64) *scene.Scene {
	t.Helper()
	s, err := scene.Build(texture.NewDefaultCache(texture.Options{Seed: 3}))
	if err != nil {
		t.Fatal(err)
	}
	s.Apply(animation.ComputeFrame(ms, animation.DefaultOrbit(), s.ConePosition()))
	return s
}

func TestSpotIrradiance(t *testing.T) {
	s := testScene(t, 0) // aiming at (5, 2, 0) on the right wall
	l := NewLights(s)

	lit := l.Irradiance(mathutil.Vec3{5, 2, 0}, mathutil.Vec3{-1, 0, 0})
	dark := l.Irradiance(mathutil.Vec3{-5, 2, 0}, mathutil.Vec3{1, 0, 0})

	if lit[1] <= dark[1] {
		t.Fatalf("spot target green %v not brighter than opposite wall %v", lit[1], dark[1])
	}
	if dark != l.Ambient {
		t.Fatalf("opposite wall should only see ambient: %v vs %v", dark, l.Ambient)
	}
	if lit[0] != l.Ambient[0] || lit[2] != l.Ambient[2] {
		t.Fatalf("green spotlight leaked into red/blue: %v", lit)
	}
}

func TestSpotConeEdge(t *testing.T) {
	l := Lights{
		SpotOn:      true,
		SpotPos:     mathutil.Vec3{0, 0, 0},
		SpotDir:     mathutil.Vec3{0, 0, 1},
		SpotColor:   mathutil.Vec3{1, 1, 1},
		Decay:       0,
		ConeCos:     math.Cos(math.Pi / 6),
		PenumbraCos: math.Cos(math.Pi / 6 * 0.8),
	}
	n := mathutil.Vec3{0, 0, -1}
	center := l.Irradiance(mathutil.Vec3{0, 0, 1}, n)
	if math.Abs(center[0]-1) > 1e-9 {
		t.Fatalf("center = %v", center)
	}
	// 40° off axis is outside the 30° cone.
	off := mathutil.Vec3{math.Sin(40 * math.Pi / 180), 0, math.Cos(40 * math.Pi / 180)}
	if e := l.Irradiance(off, off.Scale(-1)); e[0] != 0 {
		t.Fatalf("outside cone = %v", e)
	}
	// 27° off axis sits inside the penumbra band and is partially lit.
	mid := mathutil.Vec3{math.Sin(27 * math.Pi / 180), 0, math.Cos(27 * math.Pi / 180)}
	if e := l.Irradiance(mid, mid.Scale(-1)); e[0] <= 0 || e[0] >= 1 {
		t.Fatalf("penumbra = %v", e)
	}
}

func TestSpotRangeCutoff(t *testing.T) {
	l := Lights{
		SpotOn:      true,
		SpotDir:     mathutil.Vec3{0, 0, 1},
		SpotColor:   mathutil.Vec3{1, 1, 1},
		Distance:    10,
		Decay:       2,
		ConeCos:     0.5,
		PenumbraCos: 0.9,
	}
	n := mathutil.Vec3{0, 0, -1}
	if e := l.Irradiance(mathutil.Vec3{0, 0, 11}, n); e[0] != 0 {
		t.Fatalf("beyond range = %v", e)
	}
	near := l.Irradiance(mathutil.Vec3{0, 0, 2}, n)
	far := l.Irradiance(mathutil.Vec3{0, 0, 4}, n)
	if near[0] <= far[0] {
		t.Fatalf("decay: near %v far %v", near[0], far[0])
	}
}

func TestACESTonemapRange(t *testing.T) {
	prev := 0.0
	for x := 0.0; x < 20; x += 0.25 {
		y := ACESTonemap(x)
		if y < prev-1e-12 || y < 0 || y > 1 {
			t.Fatalf("ACES(%v) = %v", x, y)
		}
		prev = y
	}
	if y := ACESTonemap(7.5); y != 1 {
		t.Errorf("ACES(7.5) = %v, want clamped to 1", y)
	}
	if y := ACESTonemap(1e6); y != 1 {
		t.Errorf("ACES(1e6) = %v, want 1", y)
	}
}
