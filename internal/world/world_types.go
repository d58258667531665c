package world

import "raycastgame/internal/mathutil"

// Sprite is a camera-facing billboard in the world. The sprite list belongs
// to the simulation; the renderer only reads it.
type Sprite struct {
	Pos      mathutil.Vec2
	Velocity mathutil.Vec2 // tiles per second, zero for static sprites
	Texture  int
}
