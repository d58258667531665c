// Package keytracker keeps a per-frame snapshot of the logical game keys and
// answers both "is it held" and "was it just pressed" queries.
package keytracker

// Key is a logical game action, independent of the physical key bound to it.
type Key int

const (
	Forward Key = iota
	Back
	TurnLeft
	TurnRight
	StrafeLeft
	StrafeRight
	Jump
	FovWider
	FovNarrower
	ToggleCeiling
	ToggleOverlay
	Quit

	KeyCount
)

var keyNames = [KeyCount]string{
	"forward", "back", "turn-left", "turn-right", "strafe-left", "strafe-right",
	"jump", "fov-wider", "fov-narrower", "toggle-ceiling", "toggle-overlay", "quit",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}

// State is the held/released flag of every key at one instant.
type State [KeyCount]bool

// Snapshot holds this frame's key state and the previous frame's. It is
// refreshed once per displayed frame with Update.
type Snapshot struct {
	cur  State
	prev State
}

// Update shifts the current state into the previous slot and stores cur.
func (s *Snapshot) Update(cur State) {
	s.prev = s.cur
	s.cur = cur
}

// Down reports whether k is held this frame.
func (s *Snapshot) Down(k Key) bool {
	return s.cur[k]
}

// Pressed returns true if the key was not pressed last frame but is pressed this frame.
func (s *Snapshot) Pressed(k Key) bool {
	return s.cur[k] && !s.prev[k]
}

// Current returns a copy of this frame's state.
func (s *Snapshot) Current() State {
	return s.cur
}
