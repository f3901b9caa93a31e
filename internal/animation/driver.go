package animation

import (
	"context"
	"errors"

	"spotlight-room/internal/mathutil"
)

// Rig is the mutable side of the scene: it reports where the projector sits
// and copies a computed frame onto the scene objects.
type Rig interface {
	ConePosition() mathutil.Vec3
	Apply(f Frame)
}

// Presenter renders and shows the scene after a frame has been applied.
type Presenter interface {
	Present(ctx context.Context, f Frame) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(ctx context.Context, f Frame) error

func (fn PresenterFunc) Present(ctx context.Context, f Frame) error {
	return fn(ctx, f)
}

// Driver runs the animation. It is the only writer of the rig's objects and
// must not be stepped from more than one goroutine.
type Driver struct {
	Orbit     Orbit
	Rig       Rig
	Presenter Presenter

	frames int
	last   Frame
}

// NewDriver creates a driver over the default orbit.
func NewDriver(rig Rig, p Presenter) *Driver {
	return &Driver{Orbit: DefaultOrbit(), Rig: rig, Presenter: p}
}

// Step runs one tick at time t: compute, apply, present.
func (d *Driver) Step(ctx context.Context, t float64) error {
	f := ComputeFrame(t, d.Orbit, d.Rig.ConePosition())
	d.Rig.Apply(f)
	d.last = f
	d.frames++
	if d.Presenter == nil {
		return nil
	}
	return d.Presenter.Present(ctx, f)
}

// Run steps the driver once per scheduler tick. shouldContinue is checked
// before every tick; a nil func means run until the scheduler or context ends.
// Returns nil when stopped by shouldContinue or an exhausted scheduler.
func (d *Driver) Run(ctx context.Context, s Scheduler, shouldContinue func() bool) error {
	for {
		if shouldContinue != nil && !shouldContinue() {
			return nil
		}
		t, err := s.Next(ctx)
		if errors.Is(err, ErrSchedulerDone) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := d.Step(ctx, t); err != nil {
			return err
		}
	}
}

// Frames returns how many ticks have run.
func (d *Driver) Frames() int {
	return d.frames
}

// Last returns the most recently applied frame.
func (d *Driver) Last() Frame {
	return d.last
}
