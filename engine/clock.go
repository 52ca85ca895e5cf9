package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock measures per-frame delta time excluding paused intervals
// Delta is consumed once per loop iteration; pause state is readable from any goroutine
type Clock struct {
	mu sync.Mutex

	provider TimeProvider
	maxDelta time.Duration

	// End of the interval measured by the previous Delta call
	last time.Time

	// Pause state
	paused          atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewClock creates a frame clock; maxDelta <= 0 disables the upper clamp
func NewClock(provider TimeProvider, maxDelta time.Duration) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{
		provider: provider,
		maxDelta: maxDelta,
	}
}

// Delta returns the time elapsed since the previous call, minus any paused time
// First call returns zero; result is clamped to [0, maxDelta]
func (c *Clock) Delta() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := c.provider.Now()
	if c.paused.Load() && !c.pauseStartTime.IsZero() {
		// Interval stops at the pause point
		end = c.pauseStartTime
	}

	if c.last.IsZero() {
		c.last = end
		return 0
	}

	// A backwards step re-anchors the reference and yields zero
	d := end.Sub(c.last)
	c.last = end

	if d < 0 {
		return 0
	}
	if c.maxDelta > 0 && d > c.maxDelta {
		return c.maxDelta
	}
	return d
}

// Pause stops delta accumulation
func (c *Clock) Pause() {
	if c.paused.CompareAndSwap(false, true) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.pauseStartTime = c.provider.Now()
	}
}

// Resume restarts delta accumulation from the current instant
func (c *Clock) Resume() {
	if c.paused.CompareAndSwap(true, false) {
		c.mu.Lock()
		defer c.mu.Unlock()

		now := c.provider.Now()
		pauseDuration := now.Sub(c.pauseStartTime)
		if pauseDuration < 0 {
			pauseDuration = 0
		}
		c.totalPausedTime += pauseDuration

		// Reference resets to now so the next delta starts at the resume point
		if !c.last.IsZero() {
			c.last = now
		}
		c.pauseStartTime = time.Time{}
	}
}

// Paused returns current pause state
func (c *Clock) Paused() bool {
	return c.paused.Load()
}

// TotalPaused returns cumulative pause time, including an ongoing pause
func (c *Clock) TotalPaused() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.totalPausedTime
	if c.paused.Load() && !c.pauseStartTime.IsZero() {
		total += c.provider.Now().Sub(c.pauseStartTime)
	}
	return total
}
