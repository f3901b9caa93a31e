package texture

import (
	"errors"
	"image/color"
	"testing"
)

func pixelAt(t *testing.T, img interface{ NRGBAAt(x, y int) color.NRGBA }, x, y int) color.NRGBA {
	t.Helper()
	return img.NRGBAAt(x, y)
}

func TestCheckerboardDefaults(t *testing.T) {
	img, err := GenerateCheckerboard(DefaultCheckerSize, DefaultCheckerSquares, CheckerGreen, CheckerDarkGreen)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(img.Pix) / 4; got != 512*512 {
		t.Fatalf("pixel count = %d", got)
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, CheckerGreen},
		{63, 63, CheckerGreen},
		{64, 0, CheckerDarkGreen},
		{0, 64, CheckerDarkGreen},
		{64, 64, CheckerGreen},
		{511, 511, CheckerGreen},
		{511, 0, CheckerDarkGreen},
	}
	for _, tc := range tests {
		if got := pixelAt(t, img, tc.x, tc.y); got != tc.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCheckerboardCells(t *testing.T) {
	cases := [][2]int{{512, 8}, {10, 3}, {7, 7}, {100, 6}, {5, 1}}
	for _, c := range cases {
		size, squares := c[0], c[1]
		img, err := GenerateCheckerboard(size, squares, CheckerGreen, CheckerDarkGreen)
		if err != nil {
			t.Fatal(err)
		}
		if got := len(img.Pix) / 4; got != size*size {
			t.Fatalf("size %d: pixel count %d", size, got)
		}

		cellOf := func(p int) int {
			for i := squares - 1; i >= 0; i-- {
				if p >= cellEdge(i, size, squares) {
					return i
				}
			}
			return 0
		}

		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				cx, cy := cellOf(x), cellOf(y)
				want := CheckerGreen
				if (cx+cy)%2 != 0 {
					want = CheckerDarkGreen
				}
				if got := img.NRGBAAt(x, y); got != want {
					t.Fatalf("size %d squares %d: pixel (%d,%d) in cell (%d,%d) = %v, want %v",
						size, squares, x, y, cx, cy, got, want)
				}
			}
		}

		// Adjacent cells differ.
		for cy := 0; cy < squares; cy++ {
			for cx := 0; cx+1 < squares; cx++ {
				a := img.NRGBAAt(cellEdge(cx, size, squares), cellEdge(cy, size, squares))
				b := img.NRGBAAt(cellEdge(cx+1, size, squares), cellEdge(cy, size, squares))
				if a == b {
					t.Fatalf("cells (%d,%d) and (%d,%d) share a color", cx, cy, cx+1, cy)
				}
			}
		}
	}
}

func TestCheckerboardUnevenTruncation(t *testing.T) {
	// 10 px / 3 cells: edges at 0, 3, 6 and the last cell spans 6..9.
	img, err := GenerateCheckerboard(10, 3, CheckerGreen, CheckerDarkGreen)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(2, 0); got != CheckerGreen {
		t.Errorf("(2,0) = %v", got)
	}
	if got := img.NRGBAAt(3, 0); got != CheckerDarkGreen {
		t.Errorf("(3,0) = %v", got)
	}
	if got := img.NRGBAAt(9, 0); got != CheckerGreen {
		t.Errorf("(9,0) = %v, remainder pixel should belong to the last cell", got)
	}
}

func TestCheckerboardInvalid(t *testing.T) {
	for _, c := range [][2]int{{0, 8}, {512, 0}, {-1, 2}, {16, -3}} {
		if _, err := GenerateCheckerboard(c[0], c[1], CheckerGreen, CheckerDarkGreen); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("GenerateCheckerboard(%d, %d) err = %v", c[0], c[1], err)
		}
	}
}
