package collision

import (
	"math"

	"raycastgame/internal/mathutil"
)

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
	GetWorldBounds() (width, height int)
}

// CollisionSystem resolves movement of boxes against the tile grid.
type CollisionSystem struct {
	tileChecker TileChecker
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker) *CollisionSystem {
	return &CollisionSystem{tileChecker: tileChecker}
}

// CanOccupy reports whether the box overlaps only passable, in-bounds tiles.
func (cs *CollisionSystem) CanOccupy(boundingBox *BoundingBox) bool {
	width, height := cs.tileChecker.GetWorldBounds()

	// Get the tile range that the bounding box covers
	minX, minY, maxX, maxY := boundingBox.GetBounds()
	startTileX := int(math.Floor(minX))
	startTileY := int(math.Floor(minY))
	endTileX := int(math.Floor(maxX))
	endTileY := int(math.Floor(maxY))

	for tileY := startTileY; tileY <= endTileY; tileY++ {
		for tileX := startTileX; tileX <= endTileX; tileX++ {
			if tileX < 0 || tileX >= width || tileY < 0 || tileY >= height {
				return false
			}
			if cs.tileChecker.IsTileBlocking(tileX, tileY) {
				return false
			}
		}
	}

	return true
}

// MoveResult is the outcome of MoveAndSlide.
type MoveResult struct {
	Pos      mathutil.Vec2
	BlockedX bool
	BlockedY bool
}

// MoveAndSlide moves a square box of the given radius by delta, one axis at
// a time. An axis whose move would overlap a wall is cancelled while the
// other axis still applies, so the box slides along walls.
func (cs *CollisionSystem) MoveAndSlide(pos, delta mathutil.Vec2, radius float64) MoveResult {
	res := MoveResult{Pos: pos}
	box := NewSquareBox(pos.X, pos.Y, radius)

	if delta.X != 0 {
		box.MoveTo(pos.X+delta.X, res.Pos.Y)
		if cs.CanOccupy(box) {
			res.Pos.X = box.X
		} else {
			res.BlockedX = true
		}
	}
	if delta.Y != 0 {
		box.MoveTo(res.Pos.X, pos.Y+delta.Y)
		if cs.CanOccupy(box) {
			res.Pos.Y = box.Y
		} else {
			res.BlockedY = true
		}
	}
	return res
}
