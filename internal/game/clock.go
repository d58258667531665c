package game

import (
	"time"
)

// FixedClock converts variable real frame times into a whole number of
// fixed-length simulation ticks. Time not consumed by a tick is carried
// into the next frame.
type FixedClock struct {
	tick       time.Duration
	maxCatchUp int // 0 = unbounded
	acc        time.Duration
}

// NewFixedClock creates a clock stepping in units of tick. When maxCatchUp
// is positive, at most that many ticks run per Advance and the surplus time
// is discarded.
func NewFixedClock(tick time.Duration, maxCatchUp int) *FixedClock {
	return &FixedClock{tick: tick, maxCatchUp: maxCatchUp}
}

// Advance adds elapsed real time and calls step once per whole tick it now
// covers. It returns the number of ticks run and the time dropped by the
// catch-up cap.
func (c *FixedClock) Advance(elapsed time.Duration, step func()) (ticks int, dropped time.Duration) {
	if elapsed > 0 {
		c.acc += elapsed
	}
	for c.acc >= c.tick {
		if c.maxCatchUp > 0 && ticks == c.maxCatchUp {
			// keep the fractional remainder so pacing stays smooth
			dropped = c.acc - c.acc%c.tick
			c.acc %= c.tick
			break
		}
		step()
		c.acc -= c.tick
		ticks++
	}
	return ticks, dropped
}

// Tick returns the fixed step length.
func (c *FixedClock) Tick() time.Duration {
	return c.tick
}

// Pending returns the accumulated time not yet consumed by a tick.
func (c *FixedClock) Pending() time.Duration {
	return c.acc
}
