package game

import (
	"log"
	"time"

	"raycastgame/internal/collision"
	"raycastgame/internal/config"
	"raycastgame/internal/game/keytracker"
	"raycastgame/internal/graphics"
	"raycastgame/internal/monitoring"
	"raycastgame/internal/render"
	"raycastgame/internal/world"
)

// GameLoop drives one displayed frame at a time independently of the
// presentation backend: refresh the key snapshot, run the due fixed ticks,
// render.
type GameLoop struct {
	sim       config.SimConfig
	grid      *world.Grid
	state     *State
	input     keytracker.Snapshot
	clock     *FixedClock
	collision *collision.CollisionSystem
	renderer  *render.Renderer
	monitor   *monitoring.PerformanceMonitor

	frameTimer *monitoring.FrameTimer
}

// NewGameLoop builds the simulation state from the loaded world and
// prepares a renderer sized to the configured frame buffer.
func NewGameLoop(cfg *config.Config, w *world.World, textures *graphics.Set) *GameLoop {
	width, height := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	r, g, b := cfg.BackgroundRGB()

	cam := render.NewCamera(width, w.Start, w.StartAngle, cfg.GetCameraFOV(), cfg.Camera.EyeHeight)
	state := &State{
		Camera:  cam,
		Sprites: append([]world.Sprite(nil), w.Sprites...),
		Ceiling: cfg.Graphics.CeilingEnabled,
		Overlay: cfg.Debug.ShowOverlay,
	}

	renderer := render.NewRenderer(width, height, textures, render.Options{
		WallHeight: cfg.World.WallHeight,
		SpriteSize: cfg.Graphics.SpriteSize,
		Background: graphics.RGB{R: r, G: g, B: b},
		Ceiling:    state.Ceiling,
	})
	monitor := monitoring.NewPerformanceMonitor(time.Duration(cfg.Debug.PerfLogSeconds * float64(time.Second)))
	renderer.SetProfiler(monitor)

	return &GameLoop{
		sim:       cfg.Sim(),
		grid:      w.Grid,
		state:     state,
		clock:     NewFixedClock(cfg.TickDuration(), cfg.Simulation.MaxCatchUpTicks),
		collision: collision.NewCollisionSystem(w.Grid),
		renderer:  renderer,
		monitor:   monitor,
	}
}

// Update refreshes the key snapshot from keys, applies edge-triggered
// actions once, then runs every simulation tick covered by elapsed.
func (gl *GameLoop) Update(elapsed time.Duration, keys keytracker.State) int {
	gl.frameTimer = gl.monitor.StartFrame()

	gl.input.Update(keys)
	gl.handleFrameInput()

	ticks, dropped := gl.clock.Advance(elapsed, func() {
		Step(gl.state, &gl.input, gl.sim, gl.collision)
	})
	if dropped > 0 {
		log.Printf("[Clock] Frame took %s, dropped %s after %d catch-up ticks of %s", elapsed, dropped, ticks, gl.clock.Tick())
	}
	gl.monitor.RecordTicks(ticks, dropped)
	return ticks
}

func (gl *GameLoop) handleFrameInput() {
	if gl.input.Pressed(keytracker.Quit) {
		gl.state.Quit = true
	}
	if gl.input.Pressed(keytracker.ToggleCeiling) {
		gl.state.Ceiling = !gl.state.Ceiling
		gl.renderer.SetCeiling(gl.state.Ceiling)
	}
	if gl.input.Pressed(keytracker.ToggleOverlay) {
		gl.state.Overlay = !gl.state.Overlay
	}
}

// Render draws the current state. The returned buffer is reused by the
// next call.
func (gl *GameLoop) Render() *render.FrameBuffer {
	fb := gl.renderer.RenderFrame(render.Scene{
		Camera:  gl.state.Camera,
		Grid:    gl.grid,
		Sprites: gl.state.Sprites,
	})
	if gl.frameTimer != nil {
		gl.frameTimer.EndFrame()
		gl.frameTimer = nil
	}
	return fb
}

// Frame runs Update and Render back to back.
func (gl *GameLoop) Frame(elapsed time.Duration, keys keytracker.State) *render.FrameBuffer {
	gl.Update(elapsed, keys)
	return gl.Render()
}

func (gl *GameLoop) State() *State { return gl.state }

func (gl *GameLoop) Grid() *world.Grid { return gl.grid }

func (gl *GameLoop) Monitor() *monitoring.PerformanceMonitor { return gl.monitor }

// Quit reports whether the quit key has been pressed.
func (gl *GameLoop) Quit() bool { return gl.state.Quit }
