package raster

import (
	"math"

	"spotlight-room/internal/mathutil"
	"spotlight-room/internal/scene"
)

// Lights holds the scene lights converted to linear space, precomputed once
// per frame.
type Lights struct {
	Ambient mathutil.Vec3 // linear irradiance

	SpotOn      bool
	SpotPos     mathutil.Vec3
	SpotDir     mathutil.Vec3 // normalized, light → target
	SpotColor   mathutil.Vec3 // linear color × intensity
	Distance    float64       // 0 = unlimited
	Decay       float64
	ConeCos     float64
	PenumbraCos float64
}

// NewLights captures the current light state of s.
func NewLights(s *scene.Scene) Lights {
	l := Lights{
		Ambient: linearColor(s.Ambient.Color).Scale(s.Ambient.Intensity),
	}
	sp := s.Spot
	if sp == nil || sp.Intensity == 0 {
		return l
	}
	target := sp.Position
	if sp.Target != nil {
		target = sp.Target.Position
	}
	l.SpotOn = true
	l.SpotPos = sp.Position
	l.SpotDir = target.Sub(sp.Position).Normalize()
	l.SpotColor = linearColor(sp.Color).Scale(sp.Intensity)
	l.Distance = sp.Distance
	l.Decay = sp.Decay
	l.ConeCos = math.Cos(sp.Angle)
	l.PenumbraCos = math.Cos(sp.Angle * (1 - sp.Penumbra))
	return l
}

// Irradiance returns the light arriving at point p with normal n.
func (l *Lights) Irradiance(p, n mathutil.Vec3) mathutil.Vec3 {
	e := l.Ambient
	if !l.SpotOn {
		return e
	}

	toLight := l.SpotPos.Sub(p)
	d := toLight.Len()
	if d < 1e-9 {
		return e
	}
	dir := toLight.Scale(1 / d)
	ndl := n.Dot(dir)
	if ndl <= 0 {
		return e
	}

	spot := smoothstep(l.ConeCos, l.PenumbraCos, -dir.Dot(l.SpotDir))
	if spot == 0 {
		return e
	}

	att := 1 / math.Max(math.Pow(d, l.Decay), 0.01)
	if l.Distance > 0 {
		f := d / l.Distance
		f = clamp01(1 - f*f*f*f)
		att *= f * f
	}
	return e.Add(l.SpotColor.Scale(ndl * spot * att))
}

func smoothstep(lo, hi, x float64) float64 {
	if x <= lo {
		return 0
	}
	if x >= hi {
		return 1
	}
	t := (x - lo) / (hi - lo)
	return t * t * (3 - 2*t)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

const (
	gamma    = 2.2
	invGamma = 1.0 / 2.2
)

func linearColor(c mathutil.Vec3) mathutil.Vec3 {
	return mathutil.Vec3{math.Pow(c[0], gamma), math.Pow(c[1], gamma), math.Pow(c[2], gamma)}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value. The fitted
// curve overshoots 1 for bright inputs, so the result is clamped to [0, 1].
func ACESTonemap(x float64) float64 {
	return clamp01((x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14))
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
