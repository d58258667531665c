package render

import (
	"sort"

	"raycastgame/internal/graphics"
	"raycastgame/internal/mathutil"
	"raycastgame/internal/world"
)

// spriteDepth is a sprite's index together with its distance along the
// camera's forward axis.
type spriteDepth struct {
	index   int
	forward float64
}

// DrawOrder returns the indices of the sprites in front of the camera,
// farthest first. Sprites at equal distance keep their list order.
func DrawOrder(cam *Camera, sprites []world.Sprite) []int {
	order := sortSprites(nil, cam, sprites)
	indices := make([]int, len(order))
	for i, sd := range order {
		indices[i] = sd.index
	}
	return indices
}

func sortSprites(buf []spriteDepth, cam *Camera, sprites []world.Sprite) []spriteDepth {
	buf = buf[:0]
	for i := range sprites {
		forward := sprites[i].Pos.Sub(cam.pos).Dot(cam.dir)
		if forward <= 0 {
			continue
		}
		buf = append(buf, spriteDepth{index: i, forward: forward})
	}
	sort.SliceStable(buf, func(a, b int) bool {
		return buf[a].forward > buf[b].forward
	})
	return buf
}

// drawSprite projects one square billboard of world size size standing on
// the floor. A column is skipped whole when the wall recorded in depth is
// nearer than the sprite; colour-key texels are never written.
func drawSprite(fb *FrameBuffer, depth DepthBuffer, cam *Camera, s *world.Sprite, forward float64, tex *graphics.Texture, size float64) {
	w, h := float64(fb.width), float64(fb.height)
	rel := s.Pos.Sub(cam.pos)
	lateral := rel.Dot(cam.right)

	screenX := w/2 + lateral*cam.projDist/forward
	halfWidth := size / 2 * cam.projDist / forward
	left := screenX - halfWidth
	right := screenX + halfWidth
	top := cam.projDist*(cam.eyeHeight-size)/forward + h/2
	bottom := cam.projDist*cam.eyeHeight/forward + h/2

	startX := int(mathutil.Clamp(left, 0, w))
	endX := int(mathutil.Clamp(right, 0, w))
	startY := int(mathutil.Clamp(top, 0, h))
	endY := int(mathutil.Clamp(bottom, 0, h))
	if startX >= endX || startY >= endY {
		return
	}

	texSize := tex.Size()
	last := texSize - 1
	stepU := float64(texSize) / (right - left)
	stepV := float64(texSize) / (bottom - top)

	u := (float64(startX) - left) * stepU
	for x := startX; x < endX; x, u = x+1, u+stepU {
		if depth[x] < forward {
			continue
		}
		tx := mathutil.ClampInt(int(u), 0, last)

		v := (float64(startY) - top) * stepV
		for y := startY; y < endY; y, v = y+1, v+stepV {
			c := tex.At(tx, mathutil.ClampInt(int(v), 0, last))
			if c == graphics.ColorKey {
				continue
			}
			fb.Set(x, y, c)
		}
	}
}
