package input

import (
	"sync/atomic"
)

// KeyEvent is a press or release of a physical key
type KeyEvent struct {
	Code    Code
	Pressed bool
}

// Queue carries key events from any goroutine to the tick goroutine
// Events are applied only at tick boundaries, never mid-tick
type Queue struct {
	ch      chan KeyEvent
	dropped atomic.Uint64
}

// NewQueue creates a queue with the given capacity
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{ch: make(chan KeyEvent, size)}
}

// Post enqueues without blocking, returns false and counts the drop when full
func (q *Queue) Post(ev KeyEvent) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Press posts a key-down event
func (q *Queue) Press(code Code) bool {
	return q.Post(KeyEvent{Code: code, Pressed: true})
}

// Release posts a key-up event
func (q *Queue) Release(code Code) bool {
	return q.Post(KeyEvent{Code: code, Pressed: false})
}

// Drain applies every pending event to s in arrival order and returns the count
func (q *Queue) Drain(s *State) int {
	n := 0
	for {
		select {
		case ev := <-q.ch:
			if ev.Pressed {
				s.RegisterKeyDown(ev.Code)
			} else {
				s.RegisterKeyUp(ev.Code)
			}
			n++
		default:
			return n
		}
	}
}

// Discard drops pending events without applying them
func (q *Queue) Discard() {
	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}

// Dropped returns the number of events rejected by a full queue
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
