package render

import (
	"math"

	"raycastgame/internal/graphics"
	"raycastgame/internal/mathutil"
	"raycastgame/internal/raycast"
	"raycastgame/internal/world"
)

// WallTextures resolves the texture for a wall tile id.
type WallTextures interface {
	Wall(id int) *graphics.Texture
}

// minWallDistance keeps a camera standing exactly on a cell boundary from
// dividing by zero.
const minWallDistance = 1e-4

// drawWalls casts one ray per screen column, records the perpendicular hit
// distance in depth and draws the textured wall slice. Columns whose ray
// leaves the grid keep an infinite depth and are not drawn.
func drawWalls(fb *FrameBuffer, depth DepthBuffer, cam *Camera, grid *world.Grid, textures WallTextures, wallHeight float64) {
	w, h := fb.width, fb.height
	fh := float64(h)
	halfH := fh / 2

	for x := 0; x < w; x++ {
		ray := cam.ColumnRay(x)
		hit := raycast.Cast(grid, cam.pos, ray)
		if hit.Miss() {
			continue
		}

		// Project onto the forward axis; Euclidean distance would bow the walls.
		d := hit.Distance * ray.Dot(cam.dir)
		if d < minWallDistance {
			d = minWallDistance
		}
		depth[x] = d

		tex := textures.Wall(int(hit.Tile))
		texX := wallTextureColumn(hit, cam.pos, ray, tex.Size())

		top := cam.projDist*(cam.eyeHeight-wallHeight)/d + halfH
		bottom := cam.projDist*cam.eyeHeight/d + halfH
		drawStart := int(mathutil.Clamp(top, 0, fh))
		drawEnd := int(mathutil.Clamp(bottom, 0, fh))

		// Step over the unclamped extent so a wall taller than the screen
		// samples only its visible part of the texture.
		step := float64(tex.Size()) / (bottom - top)
		texPos := (float64(drawStart) - top) * step
		mask := tex.Mask()
		for y := drawStart; y < drawEnd; y++ {
			texY := int(texPos) & mask
			texPos += step
			fb.Set(x, y, tex.At(texX, texY))
		}
	}
}

// wallTextureColumn maps the hit point along the struck face to a texture
// column. Faces seen from the +x or -y side are mirrored so every face reads
// left to right.
func wallTextureColumn(hit raycast.Hit, origin, ray mathutil.Vec2, size int) int {
	frac := raycast.WallFraction(hit, origin, ray)
	texX := int(math.Floor(frac * float64(size)))
	if texX >= size {
		texX = size - 1
	}
	if (hit.Side == raycast.SideX && ray.X > 0) || (hit.Side == raycast.SideY && ray.Y < 0) {
		texX = size - 1 - texX
	}
	return texX
}
