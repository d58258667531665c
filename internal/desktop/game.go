// Package desktop presents the game in a window with Ebiten.
package desktop

import (
	"fmt"
	"math"
	"time"

	"raycastgame/internal/config"
	"raycastgame/internal/game"
	"raycastgame/internal/graphics"
	"raycastgame/internal/render"
	"raycastgame/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a game.GameLoop to ebiten.Game. Ebiten runs Update once per
// displayed frame (TPS synced to FPS); the loop does its own fixed-step
// accounting from the measured frame time.
type Game struct {
	loop     *game.GameLoop
	bindings Bindings
	pressed  []ebiten.Key

	frameImg *ebiten.Image
	rgba     []byte
	last     time.Time
}

// NewGame creates the ebiten game for a loaded world.
func NewGame(cfg *config.Config, w *world.World, textures *graphics.Set) *Game {
	width, height := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	ebiten.SetTPS(ebiten.SyncWithFPS)

	return &Game{
		loop:     game.NewGameLoop(cfg, w, textures),
		bindings: DefaultBindings(),
		frameImg: ebiten.NewImage(width, height),
		rgba:     make([]byte, width*height*4),
	}
}

// Update handles input and simulation for one displayed frame.
func (g *Game) Update() error {
	now := time.Now()
	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	g.pressed = inpututil.AppendPressedKeys(g.pressed[:0])
	g.loop.Update(elapsed, g.bindings.StateFromKeys(g.pressed))

	if g.loop.Quit() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the frame buffer and hands it to ebiten.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.loop.Render()
	ExpandRGBA(g.rgba, fb.Pixels())
	g.frameImg.WritePixels(g.rgba)
	screen.DrawImage(g.frameImg, nil)

	if g.loop.State().Overlay {
		ebitenutil.DebugPrint(screen, g.overlayText())
	}
}

// Layout returns the screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	b := g.frameImg.Bounds()
	return b.Dx(), b.Dy()
}

func (g *Game) overlayText() string {
	cam := g.loop.State().Camera
	m := g.loop.Monitor().GetCurrentMetrics()
	pos := cam.Position()
	return fmt.Sprintf("FPS %.0f  TPS %.0f  up %s\npos %.2f,%.2f  angle %.0f  fov %.0f\nticks %d  walls %s  sprites %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), m.Uptime.Truncate(time.Second),
		pos.X, pos.Y, cam.Angle()*180/math.Pi, cam.FieldOfView()*180/math.Pi,
		m.TicksLastFrame, m.Passes[render.PassWalls], m.Passes[render.PassSprites])
}

// ExpandRGBA copies packed RGB24 pixels into an opaque RGBA buffer.
// dst must hold len(src)/3*4 bytes.
func ExpandRGBA(dst, src []byte) {
	for i, j := 0, 0; i+2 < len(src); i, j = i+3, j+4 {
		dst[j] = src[i]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 0xff
	}
}
