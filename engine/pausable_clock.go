package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock tracks pause state and cumulative paused wall time
// Simulated time is tick-derived, so pausing only has to suppress ticks; this records how long that lasted
type PausableClock struct {
	mu sync.RWMutex

	clock TimeProvider

	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration, excluding the current pause
}

// NewPausableClock creates a running clock, nil uses the monotonic provider
func NewPausableClock(clock TimeProvider) *PausableClock {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &PausableClock{clock: clock}
}

// Pause stops the clock, returns false if already paused
func (pc *PausableClock) Pause() bool {
	if !pc.isPaused.CompareAndSwap(false, true) {
		return false
	}
	pc.mu.Lock()
	pc.pauseStartTime = pc.clock.Now()
	pc.mu.Unlock()
	return true
}

// Resume restarts the clock, returns false if not paused
func (pc *PausableClock) Resume() bool {
	if !pc.isPaused.CompareAndSwap(true, false) {
		return false
	}
	pc.mu.Lock()
	if !pc.pauseStartTime.IsZero() {
		pc.totalPausedTime += pc.clock.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
	}
	pc.mu.Unlock()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if !pc.pauseStartTime.IsZero() {
		total += pc.clock.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// CurrentPauseDuration returns duration of current pause (0 if not paused)
func (pc *PausableClock) CurrentPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.pauseStartTime.IsZero() {
		return 0
	}
	return pc.clock.Now().Sub(pc.pauseStartTime)
}
