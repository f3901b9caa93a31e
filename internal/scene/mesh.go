package scene

import (
	"math"

	"spotlight-room/internal/mathutil"
)

// Mesh is an indexed triangle list. Triangles wind counter-clockwise when
// seen from their front side. UV v grows upward (image row 0 is v=1).
type Mesh struct {
	Positions []mathutil.Vec3
	UVs       [][2]float64
	Tris      [][3]int
}

// Plane returns a width×height rectangle centered on the origin in the XY
// plane, facing +Z.
func Plane(width, height float64) *Mesh {
	hw, hh := width/2, height/2
	return &Mesh{
		Positions: []mathutil.Vec3{
			{-hw, hh, 0}, {hw, hh, 0},
			{-hw, -hh, 0}, {hw, -hh, 0},
		},
		UVs:  [][2]float64{{0, 1}, {1, 1}, {0, 0}, {1, 0}},
		Tris: [][3]int{{0, 2, 1}, {2, 3, 1}},
	}
}

// Circle returns a disk of the given radius in the XY plane, facing +Z.
func Circle(radius float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{
		Positions: []mathutil.Vec3{{0, 0, 0}},
		UVs:       [][2]float64{{0.5, 0.5}},
	}
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		x, y := math.Cos(a), math.Sin(a)
		m.Positions = append(m.Positions, mathutil.Vec3{radius * x, radius * y, 0})
		m.UVs = append(m.UVs, [2]float64{(x + 1) / 2, (y + 1) / 2})
	}
	for i := 1; i <= segments; i++ {
		m.Tris = append(m.Tris, [3]int{0, i, i + 1})
	}
	return m
}

// Cone returns a closed cone along Y: apex at +height/2, base at -height/2.
func Cone(radius, height float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	hh := height / 2
	m := &Mesh{}

	// Apex, base center, then the base ring.
	m.Positions = append(m.Positions, mathutil.Vec3{0, hh, 0}, mathutil.Vec3{0, -hh, 0})
	m.UVs = append(m.UVs, [2]float64{0.5, 1}, [2]float64{0.5, 0.5})
	for i := 0; i <= segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		m.Positions = append(m.Positions, mathutil.Vec3{radius * math.Sin(a), -hh, radius * math.Cos(a)})
		m.UVs = append(m.UVs, [2]float64{float64(i) / float64(segments), 0})
	}
	for i := 0; i < segments; i++ {
		r0, r1 := 2+i, 3+i
		m.Tris = append(m.Tris, [3]int{0, r0, r1}) // side
		m.Tris = append(m.Tris, [3]int{1, r1, r0}) // base cap
	}
	return m
}
