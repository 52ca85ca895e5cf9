package engine

import (
	"sync/atomic"
	"time"
)

// TimeProvider is the time source consulted by the frame clock and pacer
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock; readings carry the monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually driven time source for tests
// The offset from the start instant is kept in one atomic, so readers never block writers
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64 // Nanoseconds since start, may be negative
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t; an earlier t simulates a host clock step backwards
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.start)))
}

// Advance moves time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
