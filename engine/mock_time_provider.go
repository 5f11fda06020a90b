package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually advanced clock for tests and replays
type MockTimeProvider struct {
	mu    sync.RWMutex
	start time.Time
	now   time.Time
}

var _ TimeProvider = (*MockTimeProvider)(nil)

// NewMockTimeProvider creates a mock clock frozen at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: startTime, now: startTime}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Elapsed returns time advanced since creation
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now.Sub(m.start)
}
