package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually driven clock for tests and headless runs
// Time only moves through SetTime and Advance
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64 // nanoseconds since base
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t, which may lie before the start time
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.base)))
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
