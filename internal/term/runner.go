package term

import (
	"time"

	"raycastgame/internal/game/keytracker"
	"raycastgame/internal/render"

	"github.com/gdamore/tcell/v2"
)

// FrameSource produces one frame per call from the elapsed real time and
// the held keys. game.GameLoop implements it.
type FrameSource interface {
	Frame(elapsed time.Duration, keys keytracker.State) *render.FrameBuffer
	Quit() bool
}

// Runner owns the terminal main loop.
type Runner struct {
	screen   tcell.Screen
	source   FrameSource
	keys     *KeyHold
	interval time.Duration
}

// NewRunner creates a runner drawing fps frames per second.
func NewRunner(screen tcell.Screen, source FrameSource, fps int, hold time.Duration) *Runner {
	if fps <= 0 {
		fps = 30
	}
	return &Runner{
		screen:   screen,
		source:   source,
		keys:     NewKeyHold(hold),
		interval: time.Second / time.Duration(fps),
	}
}

// Run draws frames until the quit key is pressed. The caller owns the
// screen's Init and Fini.
func (r *Runner) Run() error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(r.screen.PollEvent, eventChan, done)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			r.handleEvent(ev, time.Now())

		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			fb := r.source.Frame(elapsed, r.keys.State(now))
			if r.source.Quit() {
				return nil
			}
			Present(r.screen, fb)
		}
	}
}

// pumpEvents forwards polled events to out until poll returns nil (the
// screen was finalized) or done is closed.
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (r *Runner) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := MapKey(ev.Key(), ev.Rune()); ok {
			r.keys.Press(k, now)
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
}
