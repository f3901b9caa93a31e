package raster

import (
	"image"

	"spotlight-room/internal/texture"
)

// SampleTexture performs bilinear filtering with UV wrapping. v=0 is the
// bottom row of the image. Returns RGBA in [0, 255]. Accesses tex.Pix
// directly for performance.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a float64) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	fx := wrap(u)*float64(w) - 0.5
	fy := (1-wrap(v))*float64(h) - 0.5
	x0 := floorInt(fx)
	y0 := floorInt(fy)
	dx := fx - float64(x0)
	dy := fy - float64(y0)
	x1 := mod(x0+1, w)
	y1 := mod(y0+1, h)
	x0 = mod(x0, w)
	y0 = mod(y0, h)

	stride := tex.Stride
	pix := tex.Pix

	// Four texels
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	r = float64(pix[i00])*w00 + float64(pix[i10])*w10 + float64(pix[i01])*w01 + float64(pix[i11])*w11
	g = float64(pix[i00+1])*w00 + float64(pix[i10+1])*w10 + float64(pix[i01+1])*w01 + float64(pix[i11+1])*w11
	b = float64(pix[i00+2])*w00 + float64(pix[i10+2])*w10 + float64(pix[i01+2])*w01 + float64(pix[i11+2])*w11
	a = float64(pix[i00+3])*w00 + float64(pix[i10+3])*w10 + float64(pix[i01+3])*w01 + float64(pix[i11+3])*w11
	return r, g, b, a
}

// Sample samples a texture at mesh UVs, applying its repeat.
func Sample(t *texture.Texture, u, v float64) (r, g, b, a float64) {
	return SampleTexture(t.Image, u*t.RepeatU, v*t.RepeatV)
}

// Height reads the red channel of a bump map as a height in [0, 1].
func Height(t *texture.Texture, u, v float64) float64 {
	r, _, _, _ := Sample(t, u, v)
	return r / 255
}

func wrap(x float64) float64 {
	x -= float64(floorInt(x))
	return x
}

func floorInt(x float64) int {
	i := int(x)
	if x < float64(i) {
		i--
	}
	return i
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
