// Package scene builds the projector room: the room shell, the projector
// cone, the projected disk and the lights, and exposes the handles the
// animation driver moves every frame.
package scene

import (
	"spotlight-room/internal/animation"
	"spotlight-room/internal/mathutil"
)

// Object is a placed mesh. Base is a fixed geometry rotation applied before
// Rotation; Mesh may be nil for pure transform nodes such as the light target.
type Object struct {
	Name     string
	Mesh     *Mesh
	Material *Material
	Position mathutil.Vec3
	Rotation mathutil.Mat3
	Base     mathutil.Mat3
}

// World returns the object's model-to-world transform.
func (o *Object) World() mathutil.Mat4 {
	return mathutil.FromMat3Translation(mathutil.Mat3Mul(o.Rotation, o.Base), o.Position)
}

// SpotLight is a cone light aimed at Target. Color is sRGB in [0, 1];
// Angle is the half-angle of the cone in radians and Penumbra the fraction of
// it over which the light fades out.
type SpotLight struct {
	Color     mathutil.Vec3
	Intensity float64
	Distance  float64
	Angle     float64
	Penumbra  float64
	Decay     float64
	Position  mathutil.Vec3
	Target    *Object
}

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Color     mathutil.Vec3
	Intensity float64
}

// Handles are the objects the animation moves.
type Handles struct {
	Cone   *Object
	Disk   *Object
	Spot   *SpotLight
	Target *Object
}

// Scene is a flat list of objects plus lights.
type Scene struct {
	Background mathutil.Vec3
	Objects    []*Object
	Spot       *SpotLight
	Ambient    AmbientLight
	Handles    Handles
}

// ConePosition reports where the projector sits.
func (s *Scene) ConePosition() mathutil.Vec3 {
	return s.Handles.Cone.Position
}

// Apply copies an animation frame onto the scene: cone orientation, disk
// pose, light target, then the light position.
func (s *Scene) Apply(f animation.Frame) {
	h := s.Handles
	h.Cone.Rotation = f.Cone.Rotation
	h.Disk.Position = f.Disk.Position
	h.Disk.Rotation = f.Disk.Rotation
	h.Target.Position = f.LightTarget
	h.Spot.Position = f.LightPosition
}

// Clone returns a copy whose transforms can be changed independently.
// Meshes, materials and textures are shared read-only.
func (s *Scene) Clone() *Scene {
	c := &Scene{
		Background: s.Background,
		Ambient:    s.Ambient,
		Objects:    make([]*Object, len(s.Objects)),
	}
	byOld := make(map[*Object]*Object, len(s.Objects))
	for i, o := range s.Objects {
		cp := *o
		c.Objects[i] = &cp
		byOld[o] = &cp
	}
	spot := *s.Spot
	spot.Target = byOld[s.Spot.Target]
	c.Spot = &spot
	c.Handles = Handles{
		Cone:   byOld[s.Handles.Cone],
		Disk:   byOld[s.Handles.Disk],
		Spot:   &spot,
		Target: byOld[s.Handles.Target],
	}
	return c
}
