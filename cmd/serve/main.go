package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"spotlight-room/internal/config"
	"spotlight-room/internal/raster"
	"spotlight-room/internal/scene"
	"spotlight-room/internal/stream"
	"spotlight-room/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	listen := flag.String("listen", "", "HTTP listen address (default: :8080)")
	pattern := flag.String("pattern", "", "Image to project instead of the checkerboard")
	width := flag.Int("width", 0, "Initial frame width (default: 480)")
	height := flag.Int("height", 0, "Initial frame height (default: 270)")
	fps := flag.Float64("fps", 0, "Frames per second (default: 30)")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			logger.Error("load config", "error", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		PatternPath: *pattern,
		Width:       *width,
		Height:      *height,
		FPS:         *fps,
		Listen:      *listen,
	})
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	room, err := scene.Build(texture.NewDefaultCache(texture.Options{Seed: cfg.Seed, PatternPath: cfg.PatternPath}))
	if err != nil {
		logger.Error("build scene", "error", err)
		os.Exit(1)
	}

	server := stream.New(stream.Config{
		Listen:      cfg.Listen,
		Scene:       room,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		FPS:         cfg.FPS,
		Render:      raster.Options{Exposure: cfg.Exposure, Tonemap: cfg.Tonemap},
		Logger:      logger,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.Serve(ctx); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
