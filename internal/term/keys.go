package term

import (
	"time"

	"raycastgame/internal/game/keytracker"

	"github.com/gdamore/tcell/v2"
)

// KeyHold approximates held keys for terminals, which report presses and
// auto-repeats but never releases: a key counts as down until hold has
// passed since its last event.
type KeyHold struct {
	hold  time.Duration
	until [keytracker.KeyCount]time.Time
}

func NewKeyHold(hold time.Duration) *KeyHold {
	return &KeyHold{hold: hold}
}

// Press records an event for k at now.
func (kh *KeyHold) Press(k keytracker.Key, now time.Time) {
	kh.until[k] = now.Add(kh.hold)
}

// State returns which keys are considered down at now.
func (kh *KeyHold) State(now time.Time) keytracker.State {
	var st keytracker.State
	for k, until := range kh.until {
		st[k] = now.Before(until)
	}
	return st
}

// MapKey translates a tcell key (and its rune for KeyRune) into a game key.
func MapKey(key tcell.Key, r rune) (keytracker.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return keytracker.Forward, true
	case tcell.KeyDown:
		return keytracker.Back, true
	case tcell.KeyLeft:
		return keytracker.TurnLeft, true
	case tcell.KeyRight:
		return keytracker.TurnRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keytracker.Quit, true
	case tcell.KeyTab:
		return keytracker.ToggleOverlay, true
	case tcell.KeyRune:
		return mapRune(r)
	}
	return 0, false
}

func mapRune(r rune) (keytracker.Key, bool) {
	switch r {
	case 'w', 'W':
		return keytracker.Forward, true
	case 's', 'S':
		return keytracker.Back, true
	case 'a', 'A':
		return keytracker.StrafeLeft, true
	case 'd', 'D':
		return keytracker.StrafeRight, true
	case 'q', 'Q':
		return keytracker.TurnLeft, true
	case 'e', 'E':
		return keytracker.TurnRight, true
	case ' ':
		return keytracker.Jump, true
	case '+', '=':
		return keytracker.FovWider, true
	case '-', '_':
		return keytracker.FovNarrower, true
	case 'c', 'C':
		return keytracker.ToggleCeiling, true
	}
	return 0, false
}
