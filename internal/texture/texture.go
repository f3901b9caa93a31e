// Package texture generates and caches the procedural textures used by the
// projector room: a greyscale noise tile for bump mapping and a checkerboard
// projector pattern.
package texture

import (
	"errors"
	"image"
)

// ErrInvalidParameter is returned for non-positive dimensions, grid counts
// or noise variation.
var ErrInvalidParameter = errors.New("texture: invalid parameter")

// Texture pairs a generated pixel buffer with the tiling the consuming
// material applies to it. Wrapping is always repeat.
type Texture struct {
	Image   *image.NRGBA
	RepeatU float64
	RepeatV float64
}

// New wraps img with a 1×1 repeat.
func New(img *image.NRGBA) *Texture {
	return &Texture{Image: img, RepeatU: 1, RepeatV: 1}
}

// WithRepeat returns a copy sharing the same pixels with a different tiling.
func (t *Texture) WithRepeat(u, v float64) *Texture {
	return &Texture{Image: t.Image, RepeatU: u, RepeatV: v}
}
