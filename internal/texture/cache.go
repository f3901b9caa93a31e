package texture

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
)

// Names of the textures the projector room uses.
const (
	NoiseWall  = "noise-wall"
	NoiseFloor = "noise-floor"
	Checker    = "checker"
)

// Resolver resolves a texture name to a ready-to-sample texture.
type Resolver interface {
	Resolve(name string) (*Texture, error)
}

// Source produces a texture on first use.
type Source func() (*Texture, error)

// Cache is a concurrency-safe texture cache. Each source runs at most once;
// the resulting texture is shared read-only by every caller.
type Cache struct {
	mu      sync.RWMutex
	items   map[string]*cacheEntry
	sources map[string]Source
}

type cacheEntry struct {
	tex *Texture
	err error
}

// NewCache creates an empty cache. Register sources before resolving.
func NewCache() *Cache {
	return &Cache{
		items:   make(map[string]*cacheEntry),
		sources: make(map[string]Source),
	}
}

// Register binds name to src, replacing any earlier source that has not been
// resolved yet.
func (c *Cache) Register(name string, src Source) {
	c.mu.Lock()
	c.sources[name] = src
	c.mu.Unlock()
}

// Names returns the registered texture names in sorted order.
func (c *Cache) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.sources))
	for n := range c.sources {
		names = append(names, n)
	}
	c.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Resolve returns the texture registered under name, generating it on first use.
func (c *Cache) Resolve(name string) (*Texture, error) {
	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[name]; exists {
		c.mu.RUnlock()
		return entry.tex, entry.err
	}
	c.mu.RUnlock()

	// Slow path: generate under the write lock, sources may share a random source
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[name]; exists {
		return entry.tex, entry.err
	}
	src, ok := c.sources[name]
	if !ok {
		return nil, fmt.Errorf("texture: unknown texture %q", name)
	}
	tex, err := src()
	if err != nil {
		err = fmt.Errorf("texture: generate %s: %w", name, err)
	}
	c.items[name] = &cacheEntry{tex: tex, err: err}
	return tex, err
}

// Options controls the default texture set.
type Options struct {
	// Seed makes noise reproducible when non-zero.
	Seed uint64
	// PatternPath replaces the checkerboard with an image file when set.
	PatternPath string
}

// NewDefaultCache registers the wall and floor bump maps and the projector
// pattern.
func NewDefaultCache(opts Options) *Cache {
	c := NewCache()

	noise := func(w, h, variation int) (*Texture, error) {
		img, err := GenerateNoise(w, h, variation)
		return texOrErr(img, err)
	}
	if opts.Seed != 0 {
		rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
		noise = func(w, h, variation int) (*Texture, error) {
			img, err := GenerateNoiseRand(rng, w, h, variation)
			return texOrErr(img, err)
		}
	}

	c.Register(NoiseWall, func() (*Texture, error) {
		t, err := noise(256, 256, 50)
		if err != nil {
			return nil, err
		}
		return t.WithRepeat(4, 4), nil
	})
	c.Register(NoiseFloor, func() (*Texture, error) {
		t, err := noise(256, 256, 30)
		if err != nil {
			return nil, err
		}
		return t.WithRepeat(4, 4), nil
	})
	c.Register(Checker, func() (*Texture, error) {
		if opts.PatternPath != "" {
			img, err := LoadPattern(opts.PatternPath)
			return texOrErr(img, err)
		}
		img, err := GenerateCheckerboard(DefaultCheckerSize, DefaultCheckerSquares, CheckerGreen, CheckerDarkGreen)
		return texOrErr(img, err)
	})
	return c
}
