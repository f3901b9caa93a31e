// Package raster is a small software renderer for the projector room:
// flat panels, a cone and a disk lit by one spotlight plus ambient light.
package raster

import (
	"image"
	"sort"

	"spotlight-room/internal/camera"
	"spotlight-room/internal/mathutil"
	"spotlight-room/internal/scene"
)

// Options tune the final color transform.
type Options struct {
	Exposure float64 // linear multiplier, 0 means 1
	Tonemap  bool    // ACES filmic before sRGB encoding
}

// Renderer draws scenes into frame buffers. A Renderer keeps scratch space
// between calls and must not be shared between goroutines.
type Renderer struct {
	opts Options
	fb   *FrameBuffer

	world []mathutil.Vec3
	clip  [][4]float64
	poly  []vertex
}

// NewRenderer creates a renderer with the given color options.
func NewRenderer(opts Options) *Renderer {
	if opts.Exposure == 0 {
		opts.Exposure = 1
	}
	return &Renderer{opts: opts}
}

// Render draws s through cam into a width×height image.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Camera, width, height int) *image.NRGBA {
	return r.RenderFrame(s, cam, width, height).Image()
}

// RenderFrame draws s and returns the renderer's frame buffer, which is
// reused by the next call.
func (r *Renderer) RenderFrame(s *scene.Scene, cam *camera.Camera, width, height int) *FrameBuffer {
	if r.fb == nil || r.fb.Width != width || r.fb.Height != height {
		r.fb = NewFrameBuffer(width, height)
	}
	fb := r.fb
	bg := s.Background
	fb.Clear(clamp255(bg[0]*255), clamp255(bg[1]*255), clamp255(bg[2]*255))

	lights := NewLights(s)

	var transparent []*scene.Object
	for _, o := range s.Objects {
		if o.Mesh == nil {
			continue
		}
		if o.Material.Transparent {
			transparent = append(transparent, o)
			continue
		}
		r.drawObject(o, cam, &lights, false)
	}

	// Back to front by distance along the view.
	depth := func(o *scene.Object) float64 { return cam.Clip(o.Position)[3] }
	sort.SliceStable(transparent, func(i, j int) bool {
		return depth(transparent[i]) > depth(transparent[j])
	})
	for _, o := range transparent {
		r.drawObject(o, cam, &lights, true)
	}
	return fb
}

func (r *Renderer) drawObject(o *scene.Object, cam *camera.Camera, lights *Lights, blend bool) {
	mesh := o.Mesh
	mat := o.Material
	m := o.World()

	r.world = r.world[:0]
	r.clip = r.clip[:0]
	for _, p := range mesh.Positions {
		wp := m.MulPoint(p)
		r.world = append(r.world, wp)
		r.clip = append(r.clip, cam.Clip(wp))
	}

	s := surface{
		mat:      mat,
		lights:   lights,
		color:    linearColor(mat.Color),
		exposure: r.opts.Exposure,
		tonemap:  r.opts.Tonemap,
	}

	hasUV := len(mesh.UVs) == len(mesh.Positions)
	for _, tri := range mesh.Tris {
		a, b, c := r.world[tri[0]], r.world[tri[1]], r.world[tri[2]]
		e1, e2 := b.Sub(a), c.Sub(a)
		n := e1.Cross(e2)
		if n.Len() < 1e-12 {
			continue
		}
		n = n.Normalize()

		// Back-face culling for single-sided materials; double-sided faces
		// are lit from the side the camera sees.
		if n.Dot(cam.Position.Sub(a)) <= 0 {
			if !mat.DoubleSided {
				continue
			}
			n = n.Scale(-1)
		}
		s.normal = n

		var uv [3][2]float64
		if hasUV {
			uv = [3][2]float64{mesh.UVs[tri[0]], mesh.UVs[tri[1]], mesh.UVs[tri[2]]}
		}
		if mat.BumpMap != nil && hasUV {
			s.tangent, s.bitan = tangentFrame(e1, e2, uv)
		}

		r.poly = r.poly[:0]
		var in [3]vertex
		for k := 0; k < 3; k++ {
			in[k] = vertex{clip: r.clip[tri[k]], world: r.world[tri[k]], u: uv[k][0], v: uv[k][1]}
		}
		r.poly = clipNear(in[:], r.poly)
		if len(r.poly) < 3 {
			continue
		}

		p0 := r.fb.project(r.poly[0])
		for k := 1; k+1 < len(r.poly); k++ {
			r.fb.drawTriangle(p0, r.fb.project(r.poly[k]), r.fb.project(r.poly[k+1]), &s, blend)
		}
	}
}

// tangentFrame returns dP/du and dP/dv of a triangle, each divided by its
// squared length, so a height slope in UV units maps to a normal tilt.
func tangentFrame(e1, e2 mathutil.Vec3, uv [3][2]float64) (mathutil.Vec3, mathutil.Vec3) {
	du1, dv1 := uv[1][0]-uv[0][0], uv[1][1]-uv[0][1]
	du2, dv2 := uv[2][0]-uv[0][0], uv[2][1]-uv[0][1]
	det := du1*dv2 - du2*dv1
	if det > -1e-12 && det < 1e-12 {
		return mathutil.Vec3{}, mathutil.Vec3{}
	}
	inv := 1 / det
	t := e1.Scale(dv2 * inv).Sub(e2.Scale(dv1 * inv))
	b := e2.Scale(du1 * inv).Sub(e1.Scale(du2 * inv))
	return scaleInvSq(t), scaleInvSq(b)
}

func scaleInvSq(v mathutil.Vec3) mathutil.Vec3 {
	l2 := v.Dot(v)
	if l2 < 1e-12 {
		return mathutil.Vec3{}
	}
	return v.Scale(1 / l2)
}
