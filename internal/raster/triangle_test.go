package raster

import (
	"image"
	"math"
	"testing"

	"spotlight-room/internal/mathutil"
	"spotlight-room/internal/scene"
	"spotlight-room/internal/texture"
)

func TestClipNear(t *testing.T) {
	front := vertex{clip: [4]float64{0, 0, 0, 1}}
	behind := vertex{clip: [4]float64{0, 0, -3, 1}}

	tests := []struct {
		name string
		in   []vertex
		want int
	}{
		{"all in front", []vertex{front, front, front}, 3},
		{"all behind", []vertex{behind, behind, behind}, 0},
		{"one behind", []vertex{front, front, behind}, 4},
		{"two behind", []vertex{front, behind, behind}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := clipNear(tc.in, nil)
			if len(out) != tc.want {
				t.Fatalf("got %d vertices, want %d", len(out), tc.want)
			}
			for _, v := range out {
				if v.clip[2]+v.clip[3] < -1e-9 {
					t.Fatalf("vertex %v behind near plane", v.clip)
				}
			}
		})
	}
}

func TestDrawTriangleDepth(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	mat := &scene.Material{Shading: scene.Basic, Color: mathutil.Vec3{1, 0, 0}, Opacity: 1}
	red := &surface{mat: mat, color: linearColor(mat.Color), exposure: 1}
	mat2 := &scene.Material{Shading: scene.Basic, Color: mathutil.Vec3{0, 0, 1}, Opacity: 1}
	blue := &surface{mat: mat2, color: linearColor(mat2.Color), exposure: 1}

	quad := func(invW float64, s *surface) {
		a := screenVertex{x: 0, y: 0, invW: invW}
		b := screenVertex{x: 8, y: 0, invW: invW}
		c := screenVertex{x: 0, y: 8, invW: invW}
		d := screenVertex{x: 8, y: 8, invW: invW}
		fb.drawTriangle(a, c, b, s, false)
		fb.drawTriangle(c, d, b, s, false)
	}

	quad(0.5, red)   // nearer
	quad(0.25, blue) // farther, must be hidden

	for i := 0; i < len(fb.Color); i += 4 {
		if fb.Color[i] != 255 || fb.Color[i+2] != 0 {
			t.Fatalf("pixel %d = %v, want red", i/4, fb.Color[i:i+4])
		}
	}
}

func TestDrawTriangleBlend(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	mat := &scene.Material{Shading: scene.Basic, Color: mathutil.Vec3{0, 1, 0}, Opacity: 0.5, Transparent: true}
	s := &surface{mat: mat, color: linearColor(mat.Color), exposure: 1}

	a := screenVertex{x: -1, y: -1, invW: 1}
	b := screenVertex{x: 9, y: -1, invW: 1}
	c := screenVertex{x: -1, y: 9, invW: 1}
	fb.drawTriangle(a, c, b, s, true)

	if g := fb.Color[1]; g < 126 || g > 129 {
		t.Fatalf("blended green = %d, want about 128", g)
	}
	if fb.Color[0] != 0 || fb.Color[3] != 255 {
		t.Fatalf("pixel = %v", fb.Color[:4])
	}
}

func TestSampleTextureWraps(t *testing.T) {
	img, err := texture.GenerateCheckerboard(4, 2, texture.CheckerGreen, texture.CheckerDarkGreen)
	if err != nil {
		t.Fatal(err)
	}
	// Texel centers: u=0.125 is column 0, v=0.875 is row 0.
	_, g0, _, _ := SampleTexture(img, 0.125, 0.875)
	_, g1, _, _ := SampleTexture(img, 1.125, -0.125)
	if math.Abs(g0-255) > 1e-9 || math.Abs(g1-255) > 1e-9 {
		t.Fatalf("g0=%v g1=%v", g0, g1)
	}
	_, g2, _, _ := SampleTexture(img, 0.625, 0.875)
	if math.Abs(g2-0x33) > 1e-9 {
		t.Fatalf("g2=%v", g2)
	}
}

func TestHeight(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 51
		img.Pix[i+3] = 255
	}
	tex := texture.New(img).WithRepeat(4, 4)
	if h := Height(tex, 0.3, 0.7); math.Abs(h-0.2) > 1e-9 {
		t.Fatalf("height = %v", h)
	}
}
