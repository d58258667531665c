package render

import (
	"raycastgame/internal/graphics"
)

// drawFloor casts every row below the horizon onto the floor plane and,
// when ceiling is non-nil, every row above it onto the ceiling plane at
// wallHeight.
//
// Per row it computes the world points under the two screen edges once and
// steps linearly between them, so the inner loop has no division.
func drawFloor(fb *FrameBuffer, cam *Camera, floor, ceiling *graphics.Texture, wallHeight float64) {
	w, h := fb.width, fb.height
	halfH := float64(h) / 2
	eye := cam.eyeHeight
	projDist := cam.projDist

	for y := 0; y < h; y++ {
		var tex *graphics.Texture
		var dist float64

		if p := float64(y) - halfH; p > 0 {
			if eye <= 0 {
				continue
			}
			tex = floor
			dist = eye * projDist / p
		} else if p < 0 && ceiling != nil {
			above := wallHeight - eye
			if above <= 0 {
				continue
			}
			tex = ceiling
			dist = above * projDist / -p
		} else {
			continue
		}

		drawPlaneRow(fb, cam, tex, y, w, dist)
	}
}

func drawPlaneRow(fb *FrameBuffer, cam *Camera, tex *graphics.Texture, y, w int, dist float64) {
	size := float64(tex.Size())
	mask := tex.Mask()

	start := cam.pos.Add(cam.leftEdge.Scale(dist))
	end := cam.pos.Add(cam.rightEdge.Scale(dist))
	stepX := (end.X - start.X) / float64(w)
	stepY := (end.Y - start.Y) / float64(w)

	wx, wy := start.X, start.Y
	for x := 0; x < w; x++ {
		tx := int(wx*size) & mask
		ty := int(wy*size) & mask
		fb.Set(x, y, tex.At(tx, ty))
		wx += stepX
		wy += stepY
	}
}
