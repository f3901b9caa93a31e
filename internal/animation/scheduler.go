package animation

import (
	"context"
	"errors"
	"time"
)

// ErrSchedulerDone is returned by a Scheduler that has no more ticks.
var ErrSchedulerDone = errors.New("animation: scheduler done")

// Scheduler hands out monotonically increasing timestamps in milliseconds,
// one per tick. Next blocks until the tick is due.
type Scheduler interface {
	Next(ctx context.Context) (float64, error)
}

// FixedStep ticks without waiting, advancing by StepMS from Start.
// Frames limits the number of ticks; zero means unlimited.
type FixedStep struct {
	Start  float64
	StepMS float64
	Frames int

	n int
}

// NewFixedStep returns a scheduler for frames ticks at fps frames per second.
func NewFixedStep(start float64, fps float64, frames int) *FixedStep {
	return &FixedStep{Start: start, StepMS: 1000 / fps, Frames: frames}
}

func (s *FixedStep) Next(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.Frames > 0 && s.n >= s.Frames {
		return 0, ErrSchedulerDone
	}
	t := s.Start + float64(s.n)*s.StepMS
	s.n++
	return t, nil
}

// RealTime ticks at a fixed wall-clock interval and reports the elapsed time
// since the first tick was requested.
type RealTime struct {
	Interval time.Duration

	start  time.Time
	ticker *time.Ticker
}

// NewRealTime returns a wall-clock scheduler ticking fps times per second.
func NewRealTime(fps float64) *RealTime {
	return &RealTime{Interval: time.Duration(float64(time.Second) / fps)}
}

func (s *RealTime) Next(ctx context.Context) (float64, error) {
	if s.ticker == nil {
		s.start = time.Now()
		s.ticker = time.NewTicker(s.Interval)
		return 0, ctx.Err()
	}
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case now := <-s.ticker.C:
		return float64(now.Sub(s.start)) / float64(time.Millisecond), nil
	}
}

// Stop releases the underlying ticker.
func (s *RealTime) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}
