package world

import (
	"fmt"

	"raycastgame/internal/config"
	"raycastgame/internal/mathutil"
)

// World is the simulation-owned level state: the static grid plus the
// mutable sprite list.
type World struct {
	Grid    *Grid
	Sprites []Sprite
	// Starting pose
	Start      mathutil.Vec2
	StartAngle float64
}

// NewWorld combines a loaded map with the sprites and start pose from cfg.
// A '+' in the map overrides the configured start position.
func NewWorld(cfg *config.Config, md *MapData) (*World, error) {
	w := &World{
		Grid:       md.Grid,
		Start:      mathutil.V(cfg.Camera.StartX, cfg.Camera.StartY),
		StartAngle: cfg.GetStartAngle(),
	}
	if md.HasStart {
		w.Start = md.StartPosition()
	}

	textures := len(cfg.Graphics.Sprites)
	for _, spawn := range md.Sprites {
		if spawn.Texture >= textures {
			return nil, fmt.Errorf("sprite at (%d,%d) uses texture %d of %d", spawn.X, spawn.Y, spawn.Texture, textures)
		}
		w.Sprites = append(w.Sprites, Sprite{Pos: TileCenter(spawn.X, spawn.Y), Texture: spawn.Texture})
	}
	for _, sc := range cfg.World.Sprites {
		w.Sprites = append(w.Sprites, Sprite{
			Pos:      mathutil.V(sc.X, sc.Y),
			Velocity: mathutil.V(sc.VelocityX, sc.VelocityY),
			Texture:  sc.Texture,
		})
	}

	sx, sy := int(w.Start.X), int(w.Start.Y)
	if w.Grid.IsTileBlocking(sx, sy) {
		return nil, fmt.Errorf("start position (%.2f, %.2f) is inside a wall or outside the map", w.Start.X, w.Start.Y)
	}
	return w, nil
}

// LoadWorld loads cfg.World.MapFile (or mapPath when set) and builds the world.
func LoadWorld(cfg *config.Config, mapPath string) (*World, error) {
	if mapPath == "" {
		mapPath = cfg.World.MapFile
	}
	loader := NewMapLoader()
	loader.Verbose = cfg.Debug.VerboseMapLoader
	md, err := loader.LoadMap(mapPath)
	if err != nil {
		return nil, err
	}
	return NewWorld(cfg, md)
}
