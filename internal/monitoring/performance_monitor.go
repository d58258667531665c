// Package monitoring collects per-frame timings: whole frames, the named
// render passes and the number of simulation ticks run before each frame.
package monitoring

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// PerformanceMonitor tracks frame, pass and tick metrics and optionally
// logs a summary every report interval. It is used from the frame loop's
// goroutine only.
type PerformanceMonitor struct {
	// Frame metrics
	frameCount uint64
	frameTime  time.Duration // last frame

	// Simulation metrics
	ticksLastFrame int
	ticksTotal     uint64
	droppedTime    time.Duration // discarded by the catch-up cap

	passLast map[string]time.Duration
	passSum  map[string]time.Duration // since last report

	// Reporting window
	frameSum   time.Duration
	frameSamps int
	tickSamps  int
	startTime  time.Time
	lastReport time.Time

	// Configuration
	reportInterval time.Duration
	now            func() time.Time
	logf           func(format string, args ...any)
}

// NewPerformanceMonitor creates a monitor. A zero reportInterval disables
// the periodic log summary.
func NewPerformanceMonitor(reportInterval time.Duration) *PerformanceMonitor {
	return newPerformanceMonitor(reportInterval, time.Now, log.Printf)
}

func newPerformanceMonitor(reportInterval time.Duration, now func() time.Time, logf func(string, ...any)) *PerformanceMonitor {
	pm := &PerformanceMonitor{
		passLast:       make(map[string]time.Duration),
		passSum:        make(map[string]time.Duration),
		reportInterval: reportInterval,
		now:            now,
		logf:           logf,
	}
	pm.startTime = now()
	pm.lastReport = pm.startTime
	return pm
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{
		monitor:   pm,
		startTime: pm.now(),
	}
}

// EndFrame completes frame timing and emits the periodic summary when due.
func (ft *FrameTimer) EndFrame() {
	pm := ft.monitor
	end := pm.now()
	frameTime := end.Sub(ft.startTime)
	pm.frameTime = frameTime
	pm.frameCount++
	pm.frameSum += frameTime
	pm.frameSamps++

	if pm.reportInterval > 0 && end.Sub(pm.lastReport) >= pm.reportInterval {
		pm.logf("%s", pm.summary(end))
	}
}

// ProfiledFunction wraps a function with performance timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := pm.now()
	fn()
	duration := pm.now().Sub(start)

	pm.passLast[name] = duration
	pm.passSum[name] += duration
	return duration
}

// RecordTicks stores how many simulation ticks ran before the current frame
// and how much accumulated time the catch-up cap threw away.
func (pm *PerformanceMonitor) RecordTicks(ticks int, dropped time.Duration) {
	pm.ticksLastFrame = ticks
	pm.ticksTotal += uint64(ticks)
	pm.tickSamps += ticks
	if dropped > 0 {
		pm.droppedTime += dropped
	}
}

// FrameMetrics is a point-in-time view of the monitor.
type FrameMetrics struct {
	FrameCount      uint64
	FrameTime       time.Duration
	FramesPerSecond float64
	TicksLastFrame  int
	TicksTotal      uint64
	DroppedTime     time.Duration
	Passes          map[string]time.Duration // last frame
	Uptime          time.Duration
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() FrameMetrics {
	fps := 0.0
	if pm.frameTime > 0 {
		fps = float64(time.Second) / float64(pm.frameTime)
	}

	passes := make(map[string]time.Duration, len(pm.passLast))
	for k, v := range pm.passLast {
		passes[k] = v
	}

	return FrameMetrics{
		FrameCount:      pm.frameCount,
		FrameTime:       pm.frameTime,
		FramesPerSecond: fps,
		TicksLastFrame:  pm.ticksLastFrame,
		TicksTotal:      pm.ticksTotal,
		DroppedTime:     pm.droppedTime,
		Passes:          passes,
		Uptime:          pm.Uptime(),
	}
}

// summary formats the averages since the last report and starts a new
// reporting window.
func (pm *PerformanceMonitor) summary(now time.Time) string {
	var b strings.Builder
	window := now.Sub(pm.lastReport)
	frames := pm.frameSamps
	fmt.Fprintf(&b, "[Perf] %d frames in %.1fs", frames, window.Seconds())
	if frames > 0 {
		fmt.Fprintf(&b, ", avg frame %s, %.2f ticks/frame",
			(pm.frameSum / time.Duration(frames)).Round(time.Microsecond),
			float64(pm.tickSamps)/float64(frames))

		names := make([]string, 0, len(pm.passSum))
		for name := range pm.passSum {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			avg := pm.passSum[name] / time.Duration(frames)
			fmt.Fprintf(&b, ", %s %s", name, avg.Round(time.Microsecond))
		}
	}
	if pm.droppedTime > 0 {
		fmt.Fprintf(&b, ", dropped %s total", pm.droppedTime.Round(time.Millisecond))
	}

	pm.frameSum = 0
	pm.frameSamps = 0
	pm.tickSamps = 0
	clear(pm.passSum)
	pm.lastReport = now
	return b.String()
}

// Uptime returns the time since the monitor was created.
func (pm *PerformanceMonitor) Uptime() time.Duration {
	return pm.now().Sub(pm.startTime)
}
