package main

import (
	"flag"
	"fmt"
	"os"

	"spotlight-room/internal/raster"
	"spotlight-room/internal/scene"
	"spotlight-room/internal/texture"
	"spotlight-room/internal/window"
)

func main() {
	width := flag.Int("width", 960, "Window width")
	height := flag.Int("height", 540, "Window height")
	scale := flag.Int("scale", 2, "Render at window size divided by scale")
	pattern := flag.String("pattern", "", "Image to project instead of the checkerboard")
	flag.Parse()

	room, err := scene.Build(texture.NewDefaultCache(texture.Options{PatternPath: *pattern}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}

	err = window.Run(room, window.Options{
		Title:  "Spotlight room",
		Width:  *width,
		Height: *height,
		Scale:  *scale,
		Render: raster.Options{Exposure: 1},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
