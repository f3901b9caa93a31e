// Package stream serves the animated room to browsers: an HTML page plus a
// websocket that pushes every frame as a WebP image.
package stream

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"spotlight-room/internal/animation"
	"spotlight-room/internal/camera"
	"spotlight-room/internal/postprocess"
	"spotlight-room/internal/raster"
	"spotlight-room/internal/scene"

	"github.com/HugoSmits86/nativewebp"
	"github.com/gorilla/websocket"
)

//go:embed index.html
var indexHTML []byte

// Largest frame a client may request.
const (
	MaxWidth  = 1920
	MaxHeight = 1080
)

// Config holds the configuration for the stream server.
type Config struct {
	Listen      string
	Scene       *scene.Scene
	Width       int
	Height      int
	Supersample int
	FPS         float64
	Render      raster.Options
	Logger      *slog.Logger
}

// Server renders the scene on a wall-clock schedule and broadcasts frames.
type Server struct {
	cfg    Config
	logger *slog.Logger
	hub    *hub
	server *http.Server

	// mu guards the output size and camera; resize requests arrive on
	// connection goroutines while the render loop reads them.
	mu     sync.Mutex
	width  int
	height int
	cam    *camera.Camera

	driver   *animation.Driver
	renderer *raster.Renderer
}

// ResizeMessage is sent by clients when their viewport changes.
type ResizeMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 64 * 1024,
}

// New creates a stream server with the given configuration.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Supersample <= 0 {
		cfg.Supersample = 1
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	s := &Server{
		cfg:      cfg,
		logger:   cfg.Logger,
		hub:      newHub(),
		width:    cfg.Width,
		height:   cfg.Height,
		cam:      camera.New(cfg.Width, cfg.Height),
		renderer: raster.NewRenderer(cfg.Render),
	}
	s.driver = animation.NewDriver(cfg.Scene, animation.PresenterFunc(s.present))
	return s
}

// Handler returns the HTTP routes: the viewer page at / and the frame
// socket at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Serve starts the render loop and the HTTP server, and blocks until ctx is
// cancelled or either one fails.
func (s *Server) Serve(ctx context.Context) error {
	s.server = &http.Server{
		Addr:           s.cfg.Listen,
		Handler:        s.Handler(),
		ReadTimeout:    10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- s.Run(ctx)
		cancel()
	}()

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		s.hub.closeAll()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("shutdown", "error", err)
		}
	}()

	s.logger.Info("serving", "addr", s.cfg.Listen, "fps", s.cfg.FPS)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	cancel()
	if lerr := <-loopErr; lerr != nil && !errors.Is(lerr, context.Canceled) && err == nil {
		err = lerr
	}
	return err
}

// Run drives the animation in real time until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	sched := animation.NewRealTime(s.cfg.FPS)
	defer sched.Stop()
	return s.driver.Run(ctx, sched, nil)
}

// Step advances the animation to t and broadcasts the resulting frame.
func (s *Server) Step(ctx context.Context, t float64) error {
	return s.driver.Step(ctx, t)
}

// Resize changes the output size and keeps the camera aspect in sync.
// Sizes are clamped to MaxWidth×MaxHeight; non-positive sizes are ignored.
func (s *Server) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	width = min(width, MaxWidth)
	height = min(height, MaxHeight)

	s.mu.Lock()
	s.width, s.height = width, height
	s.cam.SetAspect(width, height)
	s.mu.Unlock()
}

// Size returns the current output size.
func (s *Server) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Clients returns the number of connected viewers.
func (s *Server) Clients() int {
	return s.hub.len()
}

func (s *Server) present(ctx context.Context, f animation.Frame) error {
	if s.hub.len() == 0 {
		return nil
	}

	s.mu.Lock()
	w, h := s.width, s.height
	cam := *s.cam
	s.mu.Unlock()

	img := s.render(&cam, w, h)
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return fmt.Errorf("stream: encode frame: %w", err)
	}
	s.hub.broadcast(buf.Bytes())
	return nil
}

func (s *Server) render(cam *camera.Camera, w, h int) *image.NRGBA {
	ss := s.cfg.Supersample
	img := s.renderer.Render(s.cfg.Scene, cam, w*ss, h*ss)
	if ss > 1 {
		img = postprocess.Downsample(img, w, h)
	}
	return img
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("failed to upgrade to WS", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 2)}
	s.hub.add(c)
	s.logger.Info("client connected", "remote", r.RemoteAddr, "clients", s.hub.len())

	go s.writeFrames(c)
	s.readMessages(c)

	s.hub.remove(c)
	conn.Close()
	s.logger.Info("client disconnected", "remote", r.RemoteAddr, "clients", s.hub.len())
}

func (s *Server) writeFrames(c *client) {
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			s.logger.Debug("writing to WS failed", "error", err)
			s.hub.remove(c)
			c.conn.Close()
			return
		}
	}
}

func (s *Server) readMessages(c *client) {
	for {
		typ, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if typ != websocket.TextMessage {
			continue
		}
		var msg ResizeMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Debug("bad client message", "error", err)
			continue
		}
		if msg.Type == "resize" {
			s.Resize(msg.Width, msg.Height)
			s.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
		}
	}
}
