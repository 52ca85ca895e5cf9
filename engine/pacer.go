package engine

import (
	"context"
	"time"
)

// Pacer holds a steady tick cadence by waiting until the next deadline
// A late tick is not compensated: the following deadline is measured from
// the late tick's own start, so ticks never run back-to-back to catch up
type Pacer struct {
	period   time.Duration
	provider TimeProvider
	timer    *time.Timer
	deadline time.Time
}

// NewPacer creates a pacer for the given tick period
func NewPacer(period time.Duration, provider TimeProvider) *Pacer {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	return &Pacer{
		period:   period,
		provider: provider,
		timer:    timer,
	}
}

// Period returns the configured tick period
func (p *Pacer) Period() time.Duration {
	return p.period
}

// Begin marks the start of a tick and sets its deadline
func (p *Pacer) Begin() {
	p.deadline = p.provider.Now().Add(p.period)
}

// Remaining returns time left until the current deadline, zero if already past
func (p *Pacer) Remaining() time.Duration {
	d := p.deadline.Sub(p.provider.Now())
	if d < 0 {
		return 0
	}
	return d
}

// Wait yields until the current deadline
// Returns immediately when behind schedule or when ctx is done
func (p *Pacer) Wait(ctx context.Context) {
	p.Sleep(ctx, p.Remaining())
}

// Sleep suspends for d on the pacer's timer; cancellation proceeds without retry
func (p *Pacer) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	p.timer.Reset(d)
	select {
	case <-p.timer.C:
	case <-ctx.Done():
		if !p.timer.Stop() {
			select {
			case <-p.timer.C:
			default:
			}
		}
	}
}

// Close releases the timer
func (p *Pacer) Close() {
	p.timer.Stop()
}
