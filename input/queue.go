package input

import (
	"sync/atomic"
)

// EventQueue is a lock-free SPSC ring buffer for button events
// Thread-Safety:
//   - Push: single producer at a time (Router serializes producers under its mutex)
//   - Pop: single consumer (game loop), never blocks
//   - Tail is published after the slot write, head after the slot read
//
// Overflow: Push reports false when full; nothing is overwritten
type EventQueue struct {
	events []Event
	mask   uint64
	head   atomic.Uint64 // Read index
	tail   atomic.Uint64 // Write index
}

// NewEventQueue creates a queue rounded up to a power-of-two capacity
func NewEventQueue(capacity int) *EventQueue {
	size := uint64(1)
	for size < uint64(capacity) {
		size <<= 1
	}
	return &EventQueue{
		events: make([]Event, size),
		mask:   size - 1,
	}
}

// Push appends an event, returns false if the ring is full
func (eq *EventQueue) Push(event Event) bool {
	tail := eq.tail.Load()
	if tail-eq.head.Load() > eq.mask {
		return false
	}
	eq.events[tail&eq.mask] = event
	eq.tail.Store(tail + 1) // MUST be after write
	return true
}

// Pop removes and returns the oldest event
func (eq *EventQueue) Pop() (Event, bool) {
	head := eq.head.Load()
	if head == eq.tail.Load() {
		return Event{}, false
	}
	ev := eq.events[head&eq.mask]
	eq.head.Store(head + 1)
	return ev, true
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the ring capacity
func (eq *EventQueue) Cap() int {
	return len(eq.events)
}
