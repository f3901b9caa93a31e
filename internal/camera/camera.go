// Package camera holds the perspective camera the room is viewed through.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"spotlight-room/internal/mathutil"
)

// Defaults of the room view.
const (
	DefaultFOV  = 60.0 // vertical, degrees
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

var (
	DefaultPosition = mathutil.Vec3{0, 4, 7}
	DefaultTarget   = mathutil.Vec3{0, 3, 0}
)

// Camera is a right-handed perspective camera (OpenGL clip conventions).
// Call UpdateProjection after changing FOV, Near, Far or Aspect directly;
// SetAspect does it for you.
type Camera struct {
	FOV      float64
	Aspect   float64
	Near     float64
	Far      float64
	Position mathutil.Vec3
	Target   mathutil.Vec3

	viewProj mgl64.Mat4
}

// New returns the default room camera for a width×height output.
func New(width, height int) *Camera {
	c := &Camera{
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Position: DefaultPosition,
		Target:   DefaultTarget,
	}
	c.SetAspect(width, height)
	return c
}

// SetAspect keeps the projection in sync with the output surface size.
// Non-positive sizes are ignored.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
	c.UpdateProjection()
}

// UpdateProjection recomputes the cached view-projection matrix.
func (c *Camera) UpdateProjection() {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
	view := mgl64.LookAtV(vec(c.Position), vec(c.Target), mgl64.Vec3{0, 1, 0})
	c.viewProj = proj.Mul4(view)
}

// ViewProjection returns projection × view.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.viewProj
}

// Clip transforms a world-space point into homogeneous clip space.
func (c *Camera) Clip(p mathutil.Vec3) [4]float64 {
	v := c.viewProj.Mul4x1(mgl64.Vec4{p[0], p[1], p[2], 1})
	return [4]float64{v[0], v[1], v[2], v[3]}
}

func vec(v mathutil.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
