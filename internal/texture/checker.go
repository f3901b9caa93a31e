package texture

import (
	"fmt"
	"image"
	"image/color"
)

// Projector pattern defaults.
const (
	DefaultCheckerSize    = 512
	DefaultCheckerSquares = 8
)

var (
	// CheckerGreen is the even-cell color.
	CheckerGreen = color.NRGBA{0x00, 0xff, 0x00, 0xff}
	// CheckerDarkGreen is the odd-cell color.
	CheckerDarkGreen = color.NRGBA{0x00, 0x33, 0x00, 0xff}
)

// GenerateCheckerboard fills a size×size image with a squares×squares grid.
// Cell (cx, cy) is colored a when cx+cy is even, b otherwise.
//
// Cell edges sit at cx*size/squares truncated to whole pixels, so when squares
// does not divide size the leftover pixels land in cells by that truncation
// rather than raising an error.
func GenerateCheckerboard(size, squares int, a, b color.NRGBA) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: checkerboard size %d", ErrInvalidParameter, size)
	}
	if squares <= 0 {
		return nil, fmt.Errorf("%w: checkerboard squares %d", ErrInvalidParameter, squares)
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for cy := 0; cy < squares; cy++ {
		y0, y1 := cellEdge(cy, size, squares), cellEdge(cy+1, size, squares)
		for cx := 0; cx < squares; cx++ {
			x0, x1 := cellEdge(cx, size, squares), cellEdge(cx+1, size, squares)
			c := a
			if (cx+cy)%2 != 0 {
				c = b
			}
			fillRect(img, x0, y0, x1, y1, c)
		}
	}
	return img, nil
}

// cellEdge is the first pixel coordinate of cell i.
func cellEdge(i, size, squares int) int {
	return i * size / squares
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		off := y * img.Stride
		for x := x0; x < x1; x++ {
			i := off + x*4
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
}
