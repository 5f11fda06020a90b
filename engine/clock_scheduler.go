package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/folio/core"
)

// ClockScheduler runs a tick function on a fixed period of wall time
// Ticks are strictly serialized; a late tick runs late and the schedule restarts from it,
// missed periods are never replayed as extra steps
// Deadlines, waits and lateness are all measured on the monotonic clock
type ClockScheduler struct {
	interval time.Duration
	tickFn   func()

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running atomic.Bool

	tickCount atomic.Uint64
	lateCount atomic.Uint64
}

// NewClockScheduler creates a scheduler calling tickFn every interval
func NewClockScheduler(interval time.Duration, tickFn func()) *ClockScheduler {
	return &ClockScheduler{
		interval: interval,
		tickFn:   tickFn,
	}
}

// Start launches the loop, returns false if already running
func (cs *ClockScheduler) Start(ctx context.Context) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.running.CompareAndSwap(false, true) {
		return false
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	cs.cancel = cancel
	cs.done = done

	core.Go(func() {
		cs.schedulerLoop(loopCtx, done)
	})
	return true
}

// Stop cancels the loop and waits for an in-flight tick to return, safe to call repeatedly
// Must not be called from tickFn, the wait would never finish; cancel the Start context instead
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.cancel == nil {
		return
	}
	cs.cancel()
	<-cs.done
	cs.cancel = nil
	cs.done = nil
}

// IsRunning reports whether the loop is active
func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

// TickCount returns ticks executed since creation
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// LateCount returns ticks that started more than one period behind schedule
func (cs *ClockScheduler) LateCount() uint64 {
	return cs.lateCount.Load()
}

// Interval returns the tick period
func (cs *ClockScheduler) Interval() time.Duration {
	return cs.interval
}

func (cs *ClockScheduler) schedulerLoop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer cs.running.Store(false)

	timer := time.NewTimer(cs.interval)
	defer timer.Stop()

	deadline := time.Now().Add(cs.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		// Cancellation wins over a timer that fired in the same instant
		if ctx.Err() != nil {
			return
		}

		start := time.Now()
		if start.Sub(deadline) > cs.interval {
			cs.lateCount.Add(1)
		}

		cs.tickFn()
		cs.tickCount.Add(1)

		now := time.Now()
		deadline = deadline.Add(cs.interval)
		if deadline.Before(now) {
			deadline = now.Add(cs.interval)
		}
		timer.Reset(deadline.Sub(now))
	}
}
