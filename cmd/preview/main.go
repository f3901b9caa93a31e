package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"spotlight-room/internal/raster"
	"spotlight-room/internal/scene"
	"spotlight-room/internal/termview"
	"spotlight-room/internal/texture"

	"github.com/gdamore/tcell/v2"
)

func main() {
	fps := flag.Float64("fps", 20, "Frames per second")
	ss := flag.Int("ss", 1, "Supersampling factor")
	seed := flag.Uint64("seed", 0, "Noise seed (default: random)")
	tonemap := flag.Bool("tonemap", false, "ACES tone mapping")
	flag.Parse()

	room, err := scene.Build(texture.NewDefaultCache(texture.Options{Seed: *seed}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view := termview.New(screen, room, raster.Options{Exposure: 1, Tonemap: *tonemap})
	view.Supersample = *ss
	err = view.Run(ctx, *fps)
	screen.Fini()

	if err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
