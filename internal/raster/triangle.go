package raster

import (
	"math"

	"spotlight-room/internal/mathutil"
	"spotlight-room/internal/scene"
)

// vertex is a clip-space vertex carrying the attributes the shader needs.
type vertex struct {
	clip  [4]float64
	world mathutil.Vec3
	u, v  float64
}

// screenVertex is a vertex after the perspective divide.
type screenVertex struct {
	x, y  float64
	invW  float64
	world mathutil.Vec3
	u, v  float64
}

func lerpVertex(a, b vertex, t float64) vertex {
	var c [4]float64
	for i := range c {
		c[i] = a.clip[i] + (b.clip[i]-a.clip[i])*t
	}
	return vertex{
		clip:  c,
		world: a.world.Lerp(b.world, t),
		u:     a.u + (b.u-a.u)*t,
		v:     a.v + (b.v-a.v)*t,
	}
}

// clipNear clips a polygon against the near plane (z >= -w) and appends the
// result to out.
func clipNear(in []vertex, out []vertex) []vertex {
	dist := func(p vertex) float64 { return p.clip[2] + p.clip[3] }
	for i := range in {
		a, b := in[i], in[(i+1)%len(in)]
		da, db := dist(a), dist(b)
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, lerpVertex(a, b, da/(da-db)))
		}
	}
	return out
}

func (fb *FrameBuffer) project(p vertex) screenVertex {
	invW := 1 / p.clip[3]
	return screenVertex{
		x:     (p.clip[0]*invW*0.5 + 0.5) * float64(fb.Width),
		y:     (0.5 - p.clip[1]*invW*0.5) * float64(fb.Height),
		invW:  invW,
		world: p.world,
		u:     p.u,
		v:     p.v,
	}
}

// surface is the per-triangle shading state.
type surface struct {
	mat     *scene.Material
	normal  mathutil.Vec3
	tangent mathutil.Vec3 // dP/du scaled by 1/|dP/du|²
	bitan   mathutil.Vec3 // dP/dv scaled by 1/|dP/dv|²
	lights  *Lights
	color   mathutil.Vec3 // linear material color

	exposure float64
	tonemap  bool
}

// shade returns the sRGB color in [0, 255] and coverage in [0, 1].
func (s *surface) shade(p mathutil.Vec3, u, v float64) (r, g, b, a float64) {
	m := s.mat
	cr, cg, cb := s.color[0], s.color[1], s.color[2]
	a = m.Opacity

	if m.Map != nil {
		tr, tg, tb, ta := Sample(m.Map, u, v)
		cr *= tr / 255
		cg *= tg / 255
		cb *= tb / 255
		a *= ta / 255
	}

	if m.Shading == scene.Standard {
		n := s.normal
		if m.BumpMap != nil && m.BumpScale != 0 {
			n = s.bump(u, v)
		}
		e := s.lights.Irradiance(p, n)
		// Lambertian BRDF
		cr *= e[0] / math.Pi
		cg *= e[1] / math.Pi
		cb *= e[2] / math.Pi
	}

	return s.encode(cr), s.encode(cg), s.encode(cb), a
}

// bump tilts the face normal by the bump map's height gradient, as if the
// surface were displaced by height×BumpScale along its normal.
func (s *surface) bump(u, v float64) mathutil.Vec3 {
	bm := s.mat.BumpMap
	w, h := bm.Image.Rect.Dx(), bm.Image.Rect.Dy()
	du := 1 / (float64(w) * bm.RepeatU)
	dv := 1 / (float64(h) * bm.RepeatV)

	h0 := Height(bm, u, v)
	dhdu := (Height(bm, u+du, v) - h0) / du
	dhdv := (Height(bm, u, v+dv) - h0) / dv

	k := s.mat.BumpScale
	n := s.normal.Sub(s.tangent.Scale(k * dhdu)).Sub(s.bitan.Scale(k * dhdv))
	return n.Normalize()
}

func (s *surface) encode(c float64) float64 {
	c *= s.exposure
	if s.tonemap {
		c = ACESTonemap(c)
	}
	if c <= 0 {
		return 0
	}
	return math.Pow(c, invGamma) * 255
}

// drawTriangle rasterizes one screen-space triangle with a z-buffer,
// perspective-correct attributes and optional alpha blending.
//
// This is the HOT PATH: no allocation inside the pixel loop.
func (fb *FrameBuffer) drawTriangle(a, b, c screenVertex, s *surface, blend bool) {
	x0, y0 := a.x, a.y
	x1, y1 := b.x, b.y
	x2, y2 := c.x, c.y

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	const eps = -1e-9
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < eps || w1 < eps || w2 < eps {
				continue
			}

			z := w0*a.invW + w1*b.invW + w2*c.invW
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			// Perspective-correct weights
			q0 := w0 * a.invW / z
			q1 := w1 * b.invW / z
			q2 := w2 * c.invW / z
			p := mathutil.Vec3{
				q0*a.world[0] + q1*b.world[0] + q2*c.world[0],
				q0*a.world[1] + q1*b.world[1] + q2*c.world[1],
				q0*a.world[2] + q1*b.world[2] + q2*c.world[2],
			}
			u := q0*a.u + q1*b.u + q2*c.u
			v := q0*a.v + q1*b.v + q2*c.v

			cr, cg, cb, ca := s.shade(p, u, v)
			if ca <= 0.001 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			if blend && ca < 1 {
				inv := 1 - ca
				fb.Color[pxIdx] = clamp255(cr*ca + float64(fb.Color[pxIdx])*inv)
				fb.Color[pxIdx+1] = clamp255(cg*ca + float64(fb.Color[pxIdx+1])*inv)
				fb.Color[pxIdx+2] = clamp255(cb*ca + float64(fb.Color[pxIdx+2])*inv)
			} else {
				fb.Color[pxIdx] = clamp255(cr)
				fb.Color[pxIdx+1] = clamp255(cg)
				fb.Color[pxIdx+2] = clamp255(cb)
			}
			fb.Color[pxIdx+3] = 255
		}
	}
}
