package texture

import (
	"fmt"
	"image"
	"math/rand/v2"
)

// DefaultVariation is the shade range used when the caller has no preference.
const DefaultVariation = 50

// GenerateNoise fills a width×height tile with independent grey shades drawn
// uniformly from [0, variation). Shades above 255 saturate at 255. Alpha is
// always 255.
func GenerateNoise(width, height, variation int) (*image.NRGBA, error) {
	return generateNoise(rand.IntN, width, height, variation)
}

// GenerateNoiseRand is GenerateNoise with an explicit random source, for
// reproducible renders.
func GenerateNoiseRand(r *rand.Rand, width, height, variation int) (*image.NRGBA, error) {
	return generateNoise(r.IntN, width, height, variation)
}

func generateNoise(intn func(int) int, width, height, variation int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: noise size %dx%d", ErrInvalidParameter, width, height)
	}
	if variation <= 0 {
		return nil, fmt.Errorf("%w: noise variation %d", ErrInvalidParameter, variation)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		shade := uint8(min(intn(variation), 255))
		pix[i] = shade
		pix[i+1] = shade
		pix[i+2] = shade
		pix[i+3] = 255
	}
	return img, nil
}
