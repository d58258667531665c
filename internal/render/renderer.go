package render

import (
	"time"

	"raycastgame/internal/graphics"
	"raycastgame/internal/world"
)

// Profiler times named sections of work. The monitoring package's
// PerformanceMonitor satisfies it.
type Profiler interface {
	ProfiledFunction(name string, fn func()) time.Duration
}

// Pass names reported to the Profiler.
const (
	PassFloor   = "floor"
	PassWalls   = "walls"
	PassSprites = "sprites"
)

// Options are the render constants that do not change between frames.
type Options struct {
	WallHeight float64
	SpriteSize float64
	Background graphics.RGB
	Ceiling    bool
}

// Scene is everything a frame is drawn from. The renderer only reads it.
type Scene struct {
	Camera  *Camera
	Grid    *world.Grid
	Sprites []world.Sprite
}

// Renderer owns the per-frame scratch state: the frame buffer, the depth
// buffer and the sprite sort buffer. None of it carries over between frames.
type Renderer struct {
	fb       *FrameBuffer
	depth    DepthBuffer
	textures *graphics.Set
	opts     Options
	order    []spriteDepth
	profiler Profiler
}

func NewRenderer(width, height int, textures *graphics.Set, opts Options) *Renderer {
	return &Renderer{
		fb:       NewFrameBuffer(width, height),
		depth:    NewDepthBuffer(width),
		textures: textures,
		opts:     opts,
	}
}

// SetProfiler enables per-pass timing. A nil profiler disables it.
func (r *Renderer) SetProfiler(p Profiler) {
	r.profiler = p
}

// SetCeiling turns the ceiling plane on or off.
func (r *Renderer) SetCeiling(enabled bool) {
	r.opts.Ceiling = enabled
}

func (r *Renderer) Ceiling() bool {
	return r.opts.Ceiling
}

func (r *Renderer) FrameBuffer() *FrameBuffer {
	return r.fb
}

// Depth returns the depth buffer written by the last frame's wall pass.
func (r *Renderer) Depth() DepthBuffer {
	return r.depth
}

// RenderFrame draws one complete frame: clear, floor (and ceiling), walls,
// sprites. The result is a pure function of the scene and the textures.
func (r *Renderer) RenderFrame(scene Scene) *FrameBuffer {
	r.fb.Clear(r.opts.Background)
	r.depth.Reset()

	r.pass(PassFloor, func() {
		var ceiling *graphics.Texture
		if r.opts.Ceiling {
			ceiling = r.textures.Ceiling
		}
		drawFloor(r.fb, scene.Camera, r.textures.Floor, ceiling, r.opts.WallHeight)
	})
	r.pass(PassWalls, func() {
		drawWalls(r.fb, r.depth, scene.Camera, scene.Grid, r.textures, r.opts.WallHeight)
	})
	r.pass(PassSprites, func() {
		r.drawSprites(scene)
	})
	return r.fb
}

func (r *Renderer) drawSprites(scene Scene) {
	r.order = sortSprites(r.order, scene.Camera, scene.Sprites)
	for _, sd := range r.order {
		s := &scene.Sprites[sd.index]
		tex := r.textures.Sprites[s.Texture]
		drawSprite(r.fb, r.depth, scene.Camera, s, sd.forward, tex, r.opts.SpriteSize)
	}
}

func (r *Renderer) pass(name string, fn func()) {
	if r.profiler == nil {
		fn()
		return
	}
	r.profiler.ProfiledFunction(name, fn)
}
