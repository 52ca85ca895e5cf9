package engine

import (
	"testing"
	"time"
)

func newTestClock(maxDelta time.Duration) (*Clock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewClock(mock, maxDelta), mock
}

func TestClockFirstDeltaZero(t *testing.T) {
	clock, mock := newTestClock(0)
	mock.Advance(time.Hour)

	if d := clock.Delta(); d != 0 {
		t.Errorf("Expected first delta to be 0, got %v", d)
	}
}

func TestClockDeltaMeasuresElapsed(t *testing.T) {
	clock, mock := newTestClock(0)
	clock.Delta()

	mock.Advance(33 * time.Millisecond)
	if d := clock.Delta(); d != 33*time.Millisecond {
		t.Errorf("Expected 33ms, got %v", d)
	}

	mock.Advance(17 * time.Millisecond)
	if d := clock.Delta(); d != 17*time.Millisecond {
		t.Errorf("Expected 17ms, got %v", d)
	}

	if d := clock.Delta(); d != 0 {
		t.Errorf("Expected 0 without elapsed time, got %v", d)
	}
}

func TestClockDeltaZeroAfterLongPause(t *testing.T) {
	clock, mock := newTestClock(0)
	clock.Delta()

	mock.Advance(10 * time.Millisecond)
	clock.Delta()

	clock.Pause()
	mock.Advance(72 * time.Hour)
	clock.Resume()

	if d := clock.Delta(); d != 0 {
		t.Errorf("Expected 0 immediately after resume, got %v", d)
	}

	mock.Advance(20 * time.Millisecond)
	if d := clock.Delta(); d != 20*time.Millisecond {
		t.Errorf("Expected 20ms after resume, got %v", d)
	}
}

func TestClockDeltaWhilePausedExcludesPause(t *testing.T) {
	clock, mock := newTestClock(0)
	clock.Delta()

	mock.Advance(5 * time.Millisecond)
	clock.Pause()
	mock.Advance(time.Second)

	// Only the time before the pause began is reported
	if d := clock.Delta(); d != 5*time.Millisecond {
		t.Errorf("Expected 5ms pre-pause remainder, got %v", d)
	}

	mock.Advance(time.Second)
	if d := clock.Delta(); d != 0 {
		t.Errorf("Expected 0 while paused, got %v", d)
	}
}

func TestClockPauseResumeIdempotent(t *testing.T) {
	clock, mock := newTestClock(0)
	clock.Delta()

	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause() // must not move the pause start
	mock.Advance(time.Second)

	if !clock.Paused() {
		t.Fatal("Expected clock to be paused")
	}
	if total := clock.TotalPaused(); total != 2*time.Second {
		t.Errorf("Expected 2s ongoing pause, got %v", total)
	}

	clock.Resume()
	clock.Resume()
	if clock.Paused() {
		t.Error("Expected clock to be running")
	}
	if total := clock.TotalPaused(); total != 2*time.Second {
		t.Errorf("Expected total pause 2s, got %v", total)
	}
}

func TestClockClampsNegativeDelta(t *testing.T) {
	clock, mock := newTestClock(0)
	start := mock.Now()
	clock.Delta()

	mock.SetTime(start.Add(-time.Minute))
	if d := clock.Delta(); d != 0 {
		t.Errorf("Expected backwards clock step to clamp to 0, got %v", d)
	}

	// Reference re-anchored at the earlier time
	mock.Advance(10 * time.Millisecond)
	if d := clock.Delta(); d != 10*time.Millisecond {
		t.Errorf("Expected 10ms after re-anchor, got %v", d)
	}
}

func TestClockClampsLargeDelta(t *testing.T) {
	clock, mock := newTestClock(250 * time.Millisecond)
	clock.Delta()

	mock.Advance(10 * time.Second)
	if d := clock.Delta(); d != 250*time.Millisecond {
		t.Errorf("Expected delta clamped to 250ms, got %v", d)
	}
}
