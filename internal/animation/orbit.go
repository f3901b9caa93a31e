// Package animation computes the projector orbit and drives per-frame updates.
//
// All math here is a pure function of elapsed time; applying the result to
// scene objects and presenting it are delegated to the Rig and Presenter.
package animation

import (
	"math"

	"spotlight-room/internal/mathutil"
)

// Orbit describes the path the projected disk follows. Time is in milliseconds.
type Orbit struct {
	AngularRate  float64 // radians per ms around the vertical axis
	Radius       float64
	BaseHeight   float64
	Amplitude    float64 // vertical oscillation
	VerticalRate float64 // radians per ms of the vertical oscillation
}

// DefaultOrbit returns the orbit of the projector room scene.
func DefaultOrbit() Orbit {
	return Orbit{
		AngularRate:  0.001,
		Radius:       5,
		BaseHeight:   2,
		Amplitude:    1.5,
		VerticalRate: 0.0015,
	}
}

// Position returns the orbit point at time t.
func (o Orbit) Position(t float64) mathutil.Vec3 {
	angle := t * o.AngularRate
	return mathutil.Vec3{
		o.Radius * math.Cos(angle),
		o.BaseHeight + o.Amplitude*math.Sin(t*o.VerticalRate),
		o.Radius * math.Sin(angle),
	}
}
