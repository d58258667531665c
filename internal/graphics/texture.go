package graphics

import (
	"errors"
	"fmt"

	"raycastgame/internal/mathutil"
)

// RGB is one 24-bit pixel.
type RGB struct {
	R, G, B uint8
}

// ColorKey is the reserved "draw nothing" sprite pixel.
var ColorKey = RGB{}

var ErrNotPowerOfTwo = errors.New("texture size is not a power of two")

// Texture is an immutable square, power-of-two tile of pixels.
type Texture struct {
	size   int
	mask   int
	pixels []RGB // row-major, size*size
}

// NewTexture wraps pixels as a size×size texture. The slice is not copied
// and must not be modified afterwards.
func NewTexture(size int, pixels []RGB) (*Texture, error) {
	if !mathutil.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, size)
	}
	if len(pixels) != size*size {
		return nil, fmt.Errorf("texture has %d pixels, want %d", len(pixels), size*size)
	}
	return &Texture{size: size, mask: size - 1, pixels: pixels}, nil
}

// Size returns the side length in pixels.
func (t *Texture) Size() int {
	return t.size
}

// Mask is Size()-1; ANDing any integer coordinate with it wraps into the tile.
func (t *Texture) Mask() int {
	return t.mask
}

// At returns the pixel at (x, y). Both must be in [0, Size()).
func (t *Texture) At(x, y int) RGB {
	if debugChecks && (x < 0 || y < 0 || x >= t.size || y >= t.size) {
		panic(fmt.Sprintf("texture fetch (%d,%d) outside %dx%d", x, y, t.size, t.size))
	}
	return t.pixels[y*t.size+x]
}

// Wrapped returns the pixel at (x & mask, y & mask).
func (t *Texture) Wrapped(x, y int) RGB {
	return t.pixels[(y&t.mask)*t.size+(x&t.mask)]
}
