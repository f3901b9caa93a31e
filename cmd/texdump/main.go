package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"spotlight-room/internal/texture"
)

func main() {
	outDir := flag.String("output", ".", "Directory to write textures into")
	format := flag.String("format", "tga", "Output format: tga or webp")
	seed := flag.Uint64("seed", 0, "Noise seed (default: random)")
	pattern := flag.String("pattern", "", "Projector pattern to load instead of the checkerboard")
	flag.Parse()

	if *format != "tga" && *format != "webp" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "ERR %v\n", err)
		os.Exit(1)
	}

	cache := texture.NewDefaultCache(texture.Options{Seed: *seed, PatternPath: *pattern})

	errors := 0
	for _, name := range cache.Names() {
		tex, err := cache.Resolve(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERR %s: %v\n", name, err)
			errors++
			continue
		}
		dst := filepath.Join(*outDir, name+"."+*format)
		if err := texture.Save(dst, tex.Image); err != nil {
			fmt.Fprintf(os.Stderr, "ERR %v\n", err)
			errors++
			continue
		}
		b := tex.Image.Bounds()
		fmt.Printf("OK  %s -> %s  (%dx%d, repeat %gx%g)\n",
			name, dst, b.Dx(), b.Dy(), tex.RepeatU, tex.RepeatV)
	}
	if errors > 0 {
		fmt.Printf("\nDone with %d error(s).\n", errors)
		os.Exit(1)
	}
	fmt.Println("\nDone. All textures written.")
}
