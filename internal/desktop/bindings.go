package desktop

import (
	"raycastgame/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bindings maps physical Ebiten keys to game keys. Several physical keys may
// share one game key.
type Bindings map[ebiten.Key]keytracker.Key

// DefaultBindings returns WASD plus arrow-key controls.
func DefaultBindings() Bindings {
	return Bindings{
		ebiten.KeyW:              keytracker.Forward,
		ebiten.KeyArrowUp:        keytracker.Forward,
		ebiten.KeyS:              keytracker.Back,
		ebiten.KeyArrowDown:      keytracker.Back,
		ebiten.KeyArrowLeft:      keytracker.TurnLeft,
		ebiten.KeyArrowRight:     keytracker.TurnRight,
		ebiten.KeyA:              keytracker.StrafeLeft,
		ebiten.KeyD:              keytracker.StrafeRight,
		ebiten.KeySpace:          keytracker.Jump,
		ebiten.KeyEqual:          keytracker.FovWider,
		ebiten.KeyNumpadAdd:      keytracker.FovWider,
		ebiten.KeyMinus:          keytracker.FovNarrower,
		ebiten.KeyNumpadSubtract: keytracker.FovNarrower,
		ebiten.KeyC:              keytracker.ToggleCeiling,
		ebiten.KeyTab:            keytracker.ToggleOverlay,
		ebiten.KeyEscape:         keytracker.Quit,
	}
}

// StateFromKeys builds a State from the physical keys held this frame, as
// returned by inpututil.AppendPressedKeys. Unbound keys are ignored.
func (b Bindings) StateFromKeys(pressed []ebiten.Key) keytracker.State {
	var st keytracker.State
	for _, k := range pressed {
		if gk, ok := b[k]; ok {
			st[gk] = true
		}
	}
	return st
}
