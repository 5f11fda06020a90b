package input

import (
	"time"
)

// HoldLatch synthesizes key releases for terminals that only report presses
// A key is held from its first press until no repeat arrives within the window
type HoldLatch struct {
	window time.Duration
	seen   map[Code]time.Time
}

// NewHoldLatch creates a latch with the given hold window
func NewHoldLatch(window time.Duration) *HoldLatch {
	return &HoldLatch{
		window: window,
		seen:   make(map[Code]time.Time),
	}
}

// Press records a press or auto-repeat, returns true when the key was not already held
func (l *HoldLatch) Press(code Code, now time.Time) bool {
	_, held := l.seen[code]
	l.seen[code] = now
	return !held
}

// Expire returns keys whose last press is older than the window and forgets them
func (l *HoldLatch) Expire(now time.Time) []Code {
	var released []Code
	for code, last := range l.seen {
		if now.Sub(last) >= l.window {
			released = append(released, code)
			delete(l.seen, code)
		}
	}
	return released
}

// ReleaseAll forgets every held key and returns them
func (l *HoldLatch) ReleaseAll() []Code {
	released := make([]Code, 0, len(l.seen))
	for code := range l.seen {
		released = append(released, code)
	}
	clear(l.seen)
	return released
}

// Held reports whether the key is currently latched
func (l *HoldLatch) Held(code Code) bool {
	_, ok := l.seen[code]
	return ok
}
