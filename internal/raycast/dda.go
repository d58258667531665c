// Package raycast walks rays through a tile grid one cell boundary at a time
// (DDA traversal) and reports the first wall cell entered.
package raycast

import (
	"math"

	"raycastgame/internal/mathutil"
	"raycastgame/internal/world"
)

// Side tells which kind of cell boundary the ray crossed last.
type Side int

const (
	// SideX: the ray stepped along x and crossed a vertical (x = const) boundary.
	SideX Side = iota
	// SideY: the ray stepped along y and crossed a horizontal (y = const) boundary.
	SideY
)

// MissDistance is the Distance of a Hit that left the grid.
const MissDistance = -1.0

// Hit contains the result of a DDA raycast operation.
type Hit struct {
	TileX, TileY int
	Tile         world.TileID
	// Distance is the ray parameter t at which the ray enters the struck
	// cell, i.e. the entry point is origin + t*dir. For a unit dir this is
	// the Euclidean distance.
	Distance float64
	Side     Side
}

// Miss reports whether the ray left the grid without hitting a wall.
func (h Hit) Miss() bool {
	return h.Distance < 0
}

// Point returns the world position where the ray entered the struck cell.
func (h Hit) Point(origin, dir mathutil.Vec2) mathutil.Vec2 {
	return origin.Add(dir.Scale(h.Distance))
}

var miss = Hit{Distance: MissDistance}

// Cast marches from origin (grid-tile units) along dir, which need not be
// normalized. The starting cell itself is never tested.
//
// An axis whose direction component is exactly zero never crosses a
// boundary: its boundary distance is +Inf so the other axis is always
// chosen. A zero vector misses immediately.
func Cast(g *world.Grid, origin, dir mathutil.Vec2) Hit {
	if dir.X == 0 && dir.Y == 0 {
		return miss
	}

	mapX := int(math.Floor(origin.X))
	mapY := int(math.Floor(origin.Y))

	stepX, sideDistX, deltaDistX := axisSetup(origin.X, dir.X, mapX)
	stepY, sideDistY, deltaDistY := axisSetup(origin.Y, dir.Y, mapY)

	for {
		var dist float64
		var side Side
		if sideDistX < sideDistY {
			dist = sideDistX
			sideDistX += deltaDistX
			mapX += stepX
			side = SideX
		} else {
			dist = sideDistY
			sideDistY += deltaDistY
			mapY += stepY
			side = SideY
		}

		if !g.InBounds(mapX, mapY) {
			return miss
		}
		if tile := g.At(mapX, mapY); tile != world.TileEmpty {
			return Hit{TileX: mapX, TileY: mapY, Tile: tile, Distance: dist, Side: side}
		}
	}
}

// axisSetup returns the step sign, the ray parameter of the first boundary
// crossing, and the parameter increment per cell along one axis.
func axisSetup(pos, dir float64, cell int) (step int, sideDist, deltaDist float64) {
	switch {
	case dir < 0:
		deltaDist = -1 / dir
		return -1, (pos - float64(cell)) * deltaDist, deltaDist
	case dir > 0:
		deltaDist = 1 / dir
		return 1, (float64(cell) + 1 - pos) * deltaDist, deltaDist
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

// WallFraction returns where along the struck face the ray landed, in [0, 1).
// It is the fractional part of the hit coordinate along the wall's long axis.
func WallFraction(h Hit, origin, dir mathutil.Vec2) float64 {
	var wallX float64
	if h.Side == SideX {
		wallX = origin.Y + h.Distance*dir.Y
	} else {
		wallX = origin.X + h.Distance*dir.X
	}
	return wallX - math.Floor(wallX)
}
