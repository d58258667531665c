package term

import (
	"testing"
	"time"

	"raycastgame/internal/game/keytracker"
	"raycastgame/internal/graphics"
	"raycastgame/internal/render"

	"github.com/gdamore/tcell/v2"
)

// MockScreen is a minimal mock for tcell.Screen used in tests
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         int
	runes         map[rune]int
	shown         int
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Show()            { m.shown++ }
func (m *MockScreen) Sync()            {}

// PollEvent reports a finalized screen.
func (m *MockScreen) PollEvent() tcell.Event { return nil }
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if m.runes == nil {
		m.runes = make(map[rune]int)
	}
	m.cells++
	m.runes[mainc]++
}

func TestPresentFillsEveryCell(t *testing.T) {
	fb := render.NewFrameBuffer(40, 30)
	fb.Clear(graphics.RGB{R: 9})
	screen := &MockScreen{width: 80, height: 24}

	Present(screen, fb)

	if screen.cells != 80*24 {
		t.Errorf("wrote %d cells, want %d", screen.cells, 80*24)
	}
	if screen.runes[upperHalfBlock] != screen.cells {
		t.Error("every cell should use the half block")
	}
	if screen.shown != 1 {
		t.Errorf("Show called %d times", screen.shown)
	}
}

func TestPresentSkipsEmptyScreen(t *testing.T) {
	screen := &MockScreen{}
	Present(screen, render.NewFrameBuffer(4, 4))
	if screen.cells != 0 || screen.shown != 0 {
		t.Error("zero-sized screen should not be drawn")
	}
}

func TestCellColorsSampleTwoRowsPerCell(t *testing.T) {
	// 2 columns × 4 rows; each row a different colour
	fb := render.NewFrameBuffer(2, 4)
	rowColors := []graphics.RGB{{R: 10}, {R: 20}, {R: 30}, {R: 40}}
	for y, c := range rowColors {
		fb.Set(0, y, c)
		fb.Set(1, y, c)
	}

	tests := []struct {
		cy          int
		top, bottom graphics.RGB
	}{
		{0, rowColors[0], rowColors[1]},
		{1, rowColors[2], rowColors[3]},
	}
	for _, tt := range tests {
		top, bottom := cellColors(fb, 1, tt.cy, 2, 2)
		if top != tt.top || bottom != tt.bottom {
			t.Errorf("row %d: got %v/%v, want %v/%v", tt.cy, top, bottom, tt.top, tt.bottom)
		}
	}
}

func TestKeyHoldWindow(t *testing.T) {
	kh := NewKeyHold(200 * time.Millisecond)
	t0 := time.Unix(100, 0)

	kh.Press(keytracker.Forward, t0)
	if !kh.State(t0.Add(100 * time.Millisecond))[keytracker.Forward] {
		t.Error("key should be held inside the window")
	}
	if kh.State(t0.Add(200 * time.Millisecond))[keytracker.Forward] {
		t.Error("key should be released once the window passes")
	}

	// Auto-repeat extends the hold.
	kh.Press(keytracker.Forward, t0.Add(150*time.Millisecond))
	if !kh.State(t0.Add(300 * time.Millisecond))[keytracker.Forward] {
		t.Error("repeat event should extend the hold")
	}

	var snap keytracker.Snapshot
	kh.Press(keytracker.ToggleCeiling, t0)
	pressedFrames := 0
	for f := 0; f < 10; f++ {
		snap.Update(kh.State(t0.Add(time.Duration(f) * 33 * time.Millisecond)))
		if snap.Pressed(keytracker.ToggleCeiling) {
			pressedFrames++
		}
	}
	if pressedFrames != 1 {
		t.Errorf("single key event produced %d presses", pressedFrames)
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want keytracker.Key
		ok   bool
	}{
		{tcell.KeyUp, 0, keytracker.Forward, true},
		{tcell.KeyLeft, 0, keytracker.TurnLeft, true},
		{tcell.KeyEscape, 0, keytracker.Quit, true},
		{tcell.KeyCtrlC, 0, keytracker.Quit, true},
		{tcell.KeyRune, 'd', keytracker.StrafeRight, true},
		{tcell.KeyRune, ' ', keytracker.Jump, true},
		{tcell.KeyRune, 'c', keytracker.ToggleCeiling, true},
		{tcell.KeyRune, 'z', 0, false},
		{tcell.KeyF5, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := MapKey(tt.key, tt.r)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("MapKey(%v, %q) = %v, %v; want %v, %v", tt.key, tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

// quitAfter is a FrameSource that asks to quit once it has drawn n frames.
type quitAfter struct {
	n      int
	frames int
	fb     *render.FrameBuffer
}

func (q *quitAfter) Frame(elapsed time.Duration, keys keytracker.State) *render.FrameBuffer {
	q.frames++
	return q.fb
}

func (q *quitAfter) Quit() bool { return q.frames >= q.n }

func TestRunnerStopsOnQuit(t *testing.T) {
	screen := &MockScreen{width: 8, height: 4}
	source := &quitAfter{n: 3, fb: render.NewFrameBuffer(8, 8)}

	if err := NewRunner(screen, source, 200, time.Millisecond).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if source.frames != 3 {
		t.Errorf("drew %d frames, want 3", source.frames)
	}
	if screen.shown != 2 {
		t.Errorf("presented %d frames, want 2 (the quitting frame is not shown)", screen.shown)
	}
}

func TestPumpEventsStopsWhenDone(t *testing.T) {
	out := make(chan tcell.Event) // nobody reads
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		pumpEvents(func() tcell.Event { return tcell.NewEventResize(80, 24) }, out, done)
		close(finished)
	}()

	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("event pump still blocked after done was closed")
	}
}

func TestPumpEventsStopsOnFinalizedScreen(t *testing.T) {
	out := make(chan tcell.Event, 4)
	events := []tcell.Event{tcell.NewEventResize(80, 24), tcell.NewEventResize(100, 30)}
	poll := func() tcell.Event {
		if len(events) == 0 {
			return nil
		}
		ev := events[0]
		events = events[1:]
		return ev
	}

	pumpEvents(poll, out, make(chan struct{}))
	if len(out) != 2 {
		t.Errorf("forwarded %d events, want 2", len(out))
	}
}
