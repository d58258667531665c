package world

import (
	"errors"
	"fmt"
)

// TileID identifies a grid cell: 0 is passable, anything above is a wall variant.
type TileID uint8

const TileEmpty TileID = 0

var (
	ErrNotSquare = errors.New("map is not square")
	ErrEmptyMap  = errors.New("map file contains no valid map data")
)

// Grid is an immutable square array of tile ids, row-major.
type Grid struct {
	size  int
	tiles []TileID
}

// NewGrid copies tiles into a size×size grid.
func NewGrid(size int, tiles []TileID) (*Grid, error) {
	if size <= 0 {
		return nil, ErrEmptyMap
	}
	if len(tiles) != size*size {
		return nil, fmt.Errorf("%w: %d tiles for side %d", ErrNotSquare, len(tiles), size)
	}
	cp := make([]TileID, len(tiles))
	copy(cp, tiles)
	return &Grid{size: size, tiles: cp}, nil
}

// NewBorderedGrid builds a size×size grid with a one-tile ring of wall
// around an empty interior.
func NewBorderedGrid(size int, wall TileID) *Grid {
	tiles := make([]TileID, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				tiles[y*size+x] = wall
			}
		}
	}
	return &Grid{size: size, tiles: tiles}
}

// Size returns the side length in tiles.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

// At returns the tile at (x, y). Callers check InBounds first.
func (g *Grid) At(x, y int) TileID {
	return g.tiles[y*g.size+x]
}

// IsTileBlocking treats anything outside the grid as solid.
func (g *Grid) IsTileBlocking(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.At(x, y) != TileEmpty
}

// GetWorldBounds returns the grid dimensions in tiles.
func (g *Grid) GetWorldBounds() (width, height int) {
	return g.size, g.size
}
