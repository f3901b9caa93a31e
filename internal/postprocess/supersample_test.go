package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsample(t *testing.T) {
	c := color.NRGBA{10, 200, 30, 255}
	out := Downsample(solid(64, 36, c), 32, 18)
	if b := out.Bounds(); b.Dx() != 32 || b.Dy() != 18 {
		t.Fatalf("bounds = %v", b)
	}
	if got := out.NRGBAAt(16, 9); got != c {
		t.Fatalf("center = %v, want %v", got, c)
	}
}

func TestDownsampleNoop(t *testing.T) {
	img := solid(8, 8, color.NRGBA{A: 255})
	if Downsample(img, 8, 8) != img {
		t.Fatal("expected the same image back")
	}
	if Fit(img, 8, 8) != img {
		t.Fatal("expected the same image back")
	}
}

func TestFit(t *testing.T) {
	c := color.NRGBA{0, 255, 0, 255}
	out := Fit(solid(10, 10, c), 40, 7)
	if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 7 {
		t.Fatalf("bounds = %v", b)
	}
	if got := out.NRGBAAt(20, 3); got != c {
		t.Fatalf("pixel = %v", got)
	}
}
