package scene

import (
	"fmt"
	"math"

	"spotlight-room/internal/mathutil"
	"spotlight-room/internal/texture"
)

// Room dimensions.
const (
	RoomWidth  = 10.0
	RoomDepth  = 10.0
	RoomHeight = 6.0
)

// Projector apparatus.
const (
	ConeRadius   = 0.3
	ConeHeight   = 1.0
	ConeSegments = 32
	DiskSegments = 64
)

// ProjectorPosition is where the cone and the spotlight sit.
var ProjectorPosition = mathutil.Vec3{0, RoomHeight - 0.5, 0}

// Build assembles the projector room, pulling its textures from res.
func Build(res texture.Resolver) (*Scene, error) {
	wallBump, err := res.Resolve(texture.NoiseWall)
	if err != nil {
		return nil, fmt.Errorf("scene: wall texture: %w", err)
	}
	floorBump, err := res.Resolve(texture.NoiseFloor)
	if err != nil {
		return nil, fmt.Errorf("scene: floor texture: %w", err)
	}
	pattern, err := res.Resolve(texture.Checker)
	if err != nil {
		return nil, fmt.Errorf("scene: projector pattern: %w", err)
	}

	wallMat := &Material{
		Shading:   Standard,
		Color:     mathutil.RGB(0x222222),
		BumpMap:   wallBump,
		BumpScale: 0.05,
		Roughness: 0.8,
		Opacity:   1,
	}
	floorMat := &Material{
		Shading:   Standard,
		Color:     mathutil.RGB(0x444444),
		BumpMap:   floorBump,
		BumpScale: 0.05,
		Roughness: 0.8,
		Opacity:   1,
	}

	s := &Scene{}
	add := func(o *Object) *Object {
		if o.Rotation == (mathutil.Mat3{}) {
			o.Rotation = mathutil.Mat3Identity()
		}
		if o.Base == (mathutil.Mat3{}) {
			o.Base = mathutil.Mat3Identity()
		}
		s.Objects = append(s.Objects, o)
		return o
	}

	// Floor and ceiling share a material.
	add(&Object{
		Name:     "floor",
		Mesh:     Plane(RoomWidth, RoomDepth),
		Material: floorMat,
		Rotation: mathutil.RotX(-math.Pi / 2),
	})
	add(&Object{
		Name:     "ceiling",
		Mesh:     Plane(RoomWidth, RoomDepth),
		Material: floorMat,
		Position: mathutil.Vec3{0, RoomHeight, 0},
		Rotation: mathutil.RotX(math.Pi / 2),
	})

	walls := []struct {
		name     string
		width    float64
		position mathutil.Vec3
		rotY     float64
	}{
		{"wall-back", RoomWidth, mathutil.Vec3{0, RoomHeight / 2, -RoomDepth / 2}, 0},
		{"wall-left", RoomDepth, mathutil.Vec3{-RoomWidth / 2, RoomHeight / 2, 0}, math.Pi / 2},
		{"wall-right", RoomDepth, mathutil.Vec3{RoomWidth / 2, RoomHeight / 2, 0}, -math.Pi / 2},
		{"wall-front", RoomWidth, mathutil.Vec3{0, RoomHeight / 2, RoomDepth / 2}, math.Pi},
	}
	for _, w := range walls {
		add(&Object{
			Name:     w.name,
			Mesh:     Plane(w.width, RoomHeight),
			Material: wallMat,
			Position: w.position,
			Rotation: mathutil.RotY(w.rotY),
		})
	}

	// The cone is modelled along +Y; the base rotation turns its apex onto
	// +Z so look-at orientation points it at the target.
	cone := add(&Object{
		Name: "projector",
		Mesh: Cone(ConeRadius, ConeHeight, ConeSegments),
		Material: &Material{
			Shading:     Basic,
			Color:       mathutil.RGB(0x00ff00),
			Opacity:     0.4,
			Transparent: true,
			DoubleSided: true,
		},
		Position: ProjectorPosition,
		Base:     mathutil.RotX(math.Pi / 2),
	})

	disk := add(&Object{
		Name: "projected-image",
		Mesh: Circle(ConeRadius, DiskSegments),
		Material: &Material{
			Shading:     Basic,
			Color:       mathutil.Vec3{1, 1, 1},
			Map:         pattern,
			Opacity:     0.7,
			Transparent: true,
			DoubleSided: true,
		},
	})

	target := add(&Object{Name: "light-target"})

	s.Spot = &SpotLight{
		Color:     mathutil.RGB(0x00ff00),
		Intensity: 15,
		Distance:  50,
		Angle:     math.Pi / 6,
		Penumbra:  0.2,
		Decay:     2,
		Position:  ProjectorPosition,
		Target:    target,
	}
	s.Ambient = AmbientLight{Color: mathutil.RGB(0x404040), Intensity: 0.3}

	s.Handles = Handles{Cone: cone, Disk: disk, Spot: s.Spot, Target: target}
	return s, nil
}
