package engine

import (
	"time"

	"github.com/lixenwraith/folio/input"
)

// KeyFeed turns press-only terminal key reports into press/release pairs on a session queue
// Not safe for concurrent use, drive it from the front-end's event loop
type KeyFeed struct {
	clock TimeProvider
	latch *input.HoldLatch
	table *input.KeyTable
	queue *input.Queue
}

// NewKeyFeed binds a feed to a queue; only keys bound in table are tracked
func NewKeyFeed(clock TimeProvider, queue *input.Queue, table *input.KeyTable, hold time.Duration) *KeyFeed {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if table == nil {
		table = input.DefaultKeyTable()
	}
	return &KeyFeed{
		clock: clock,
		latch: input.NewHoldLatch(hold),
		table: table,
		queue: queue,
	}
}

// Press handles a press or auto-repeat, returns false for keys the table does not handle
func (f *KeyFeed) Press(code input.Code) bool {
	if !f.table.Handles(code) {
		return false
	}
	if f.latch.Press(code, f.clock.Now()) {
		f.queue.Press(code)
	}
	return true
}

// Flush releases keys whose hold window elapsed, call once per frame
func (f *KeyFeed) Flush() int {
	released := f.latch.Expire(f.clock.Now())
	for _, code := range released {
		f.queue.Release(code)
	}
	return len(released)
}

// ReleaseAll releases every held key, used on focus loss and teardown
func (f *KeyFeed) ReleaseAll() {
	for _, code := range f.latch.ReleaseAll() {
		f.queue.Release(code)
	}
}
