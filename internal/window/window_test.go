package window

import (
	"testing"
	"time"

	"spotlight-room/internal/scene"
	"spotlight-room/internal/texture"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	room, err := scene.Build(texture.NewDefaultCache(texture.Options{Seed: 2}))
	if err != nil {
		t.Fatal(err)
	}
	return NewGame(room, Options{Width: 64, Height: 36, Scale: 2})
}

func TestUpdateStepsWithElapsedTime(t *testing.T) {
	g := newTestGame(t)
	base := time.Unix(1000, 0)
	clock := base
	g.now = func() time.Time { return clock }

	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if got := g.driver.Last().T; got != 0 {
		t.Errorf("first tick t = %v, want 0", got)
	}

	clock = base.Add(250 * time.Millisecond)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if got := g.driver.Last().T; got != 250 {
		t.Errorf("second tick t = %v, want 250", got)
	}
	if g.frame == nil || g.frame.Bounds().Dx() != 32 || g.frame.Bounds().Dy() != 18 {
		t.Fatalf("frame bounds = %v", g.frame.Bounds())
	}
}

func TestLayoutTracksWindowSize(t *testing.T) {
	g := newTestGame(t)

	w, h := g.Layout(200, 100)
	if w != 100 || h != 50 {
		t.Fatalf("layout = %dx%d", w, h)
	}
	if g.cam.Aspect != 2 {
		t.Errorf("aspect = %v, want 2", g.cam.Aspect)
	}

	w, h = g.Layout(1, 1)
	if w != 1 || h != 1 {
		t.Errorf("tiny layout = %dx%d", w, h)
	}
}
