package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickPeriod is the target interval between loop iterations
	// Loop sleeps for the remainder when a tick finishes early, never catches up when late
	TickPeriod = 33 * time.Millisecond

	// PauseFrameDelay slows the redraw rate while paused
	PauseFrameDelay = 100 * time.Millisecond

	// MaxFrameDelta caps a single frame delta after host suspend or a stalled tick
	MaxFrameDelta = 250 * time.Millisecond
)

// Input Queue Limits
const (
	// EventQueueSize is the default capacity of the button event ring buffer
	// Must be a power of two
	EventQueueSize = 256

	// MaxPointers bounds tracked pointer identities per router (mouse + touch)
	MaxPointers = 64
)

// Logical Canvas
const (
	// CanvasWidth is the default logical canvas width
	CanvasWidth = 480.0

	// CanvasHeight is the default logical canvas height
	CanvasHeight = 800.0
)

// Gameplay Board
const (
	BoardColumns = 10
	BoardRows    = 20
)
