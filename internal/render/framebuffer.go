package render

import (
	"fmt"
	"math"

	"raycastgame/internal/graphics"
)

// BytesPerPixel is the frame buffer pixel stride: tightly packed R, G, B.
const BytesPerPixel = 3

// FrameBuffer is a row-major RGB24 surface with a row pitch of width·3.
type FrameBuffer struct {
	width, height int
	pix           []byte
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*BytesPerPixel),
	}
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// Clear fills the whole buffer with c.
func (fb *FrameBuffer) Clear(c graphics.RGB) {
	if len(fb.pix) == 0 {
		return
	}
	fb.pix[0], fb.pix[1], fb.pix[2] = c.R, c.G, c.B
	for filled := BytesPerPixel; filled < len(fb.pix); filled *= 2 {
		copy(fb.pix[filled:], fb.pix[:filled])
	}
}

// Set writes one pixel. Callers guarantee 0 <= x < width and 0 <= y < height;
// the check only exists in raycastdebug builds.
func (fb *FrameBuffer) Set(x, y int, c graphics.RGB) {
	if debugChecks && (x < 0 || y < 0 || x >= fb.width || y >= fb.height) {
		panic(fmt.Sprintf("frame buffer write (%d,%d) outside %dx%d", x, y, fb.width, fb.height))
	}
	i := (y*fb.width + x) * BytesPerPixel
	fb.pix[i] = c.R
	fb.pix[i+1] = c.G
	fb.pix[i+2] = c.B
}

// At reads one pixel back. Presentation code and tests use it; render
// passes never read the buffer.
func (fb *FrameBuffer) At(x, y int) graphics.RGB {
	i := (y*fb.width + x) * BytesPerPixel
	return graphics.RGB{R: fb.pix[i], G: fb.pix[i+1], B: fb.pix[i+2]}
}

// Pixels returns the whole buffer for handoff to presentation. The slice is
// reused by the next frame.
func (fb *FrameBuffer) Pixels() []byte {
	return fb.pix
}

// DepthBuffer holds the perpendicular wall distance per screen column.
type DepthBuffer []float64

func NewDepthBuffer(width int) DepthBuffer {
	d := make(DepthBuffer, width)
	d.Reset()
	return d
}

// Reset marks every column as having no wall in front of it.
func (d DepthBuffer) Reset() {
	inf := math.Inf(1)
	for i := range d {
		d[i] = inf
	}
}
