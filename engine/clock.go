package engine

import (
	"sync"
	"time"
)

// TimeSource supplies wall time
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock
type SystemTime struct{}

// Now returns time.Now
func (SystemTime) Now() time.Time { return time.Now() }

// ManualTime is a controllable time source for tests
type ManualTime struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManualTime creates a manual source starting at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{current: start}
}

// Now returns the current manual time
func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Advance moves the manual time forward
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// PausableClock measures elapsed running time, excluding time spent paused
type PausableClock struct {
	mu sync.RWMutex

	src   TimeSource
	start time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausableClock creates a running clock; nil src uses SystemTime
func NewPausableClock(src TimeSource) *PausableClock {
	if src == nil {
		src = SystemTime{}
	}
	return &PausableClock{src: src, start: src.Now()}
}

// Elapsed returns running time since creation
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	// Frozen at the pause point while paused
	now := pc.src.Now()
	if pc.paused {
		now = pc.pauseStart
	}
	return now.Sub(pc.start) - pc.totalPaused
}

// Pause stops the clock. Pausing a paused clock is a no-op
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.src.Now()
}

// Resume restarts the clock, adding the pause to the excluded total
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPaused += pc.src.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.src.Now().Sub(pc.pauseStart)
	}
	return total
}
