package scene

import (
	"spotlight-room/internal/mathutil"
	"spotlight-room/internal/texture"
)

// Shading selects the lighting model of a material.
type Shading int

const (
	// Standard materials are lit by the scene lights.
	Standard Shading = iota
	// Basic materials ignore lights and show their color and map as-is.
	Basic
)

// Material describes how a surface is drawn. Color is sRGB in [0, 1].
type Material struct {
	Shading     Shading
	Color       mathutil.Vec3
	Map         *texture.Texture
	BumpMap     *texture.Texture
	BumpScale   float64
	Roughness   float64
	Metalness   float64
	Opacity     float64
	Transparent bool
	DoubleSided bool
}
