package input

import (
	"maps"
	"slices"
	"sync"

	"github.com/lixenwraith/blocksgame/parameter"
)

// Router converts raw pointer samples into button press/release events
//
// Architecture:
//   - Regions are registered once, before samples arrive, and never resized
//   - SubmitSample may be called from any goroutine; producers serialize on mu
//   - DrainNextEvent and CommitFrame are called by the single consumer (game loop)
//   - Hit testing is first-registered-wins when regions overlap
type Router struct {
	mu       sync.Mutex
	regions  []region
	pointers map[PointerID]*pointerState

	queue   *EventQueue
	backlog []Event // Ordered overflow, flushed before any newer event
	seq     uint64

	stats FrameStats
}

// NewRouter creates a router with the given event ring capacity
func NewRouter(queueSize int) *Router {
	if queueSize <= 0 {
		queueSize = parameter.EventQueueSize
	}
	return &Router{
		pointers: make(map[PointerID]*pointerState),
		queue:    NewEventQueue(queueSize),
	}
}

// RegisterButton adds a hit region and returns its identifier
func (r *Router) RegisterButton(x, y, width, height float64) ButtonID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.regions = append(r.regions, region{rect: Rect{X: x, Y: y, W: width, H: height}})
	return ButtonID(len(r.regions) - 1)
}

// ButtonCount returns the number of registered regions
func (r *Router) ButtonCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.regions)
}

// HitTest resolves a point to the first registered region containing it
func (r *Router) HitTest(x, y float64) ButtonID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hitTest(x, y)
}

func (r *Router) hitTest(x, y float64) ButtonID {
	for i := range r.regions {
		if r.regions[i].rect.Contains(x, y) {
			return ButtonID(i)
		}
	}
	return NoButton
}

// Pressed reports the current pressed state of a region
func (r *Router) Pressed(id ButtonID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 0 || int(id) >= len(r.regions) {
		return false
	}
	return r.regions[id].holders > 0
}

// SubmitSample ingests one raw sample, emitting zero or more events
// Returns true when the sample landed on a region (down/move) or released one (up)
func (r *Router) SubmitSample(s Sample) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Samples++
	r.flushBacklog()

	st, ok := r.pointers[s.Pointer]
	if !ok {
		if s.Kind != SampleDown || len(r.pointers) >= parameter.MaxPointers {
			// Hover, stray up, or pointer table exhausted
			return false
		}
		st = &pointerState{region: NoButton}
		r.pointers[s.Pointer] = st
	}

	switch s.Kind {
	case SampleDown:
		if !st.down {
			st.down = true
			st.region = NoButton
		}
		return r.moveTo(st, r.hitTest(s.X, s.Y))

	case SampleMove:
		if !st.down {
			return false
		}
		return r.moveTo(st, r.hitTest(s.X, s.Y))

	case SampleUp:
		released := st.region
		r.leave(released)
		delete(r.pointers, s.Pointer)
		return released != NoButton
	}

	return false
}

// moveTo transitions a down pointer to the region under it
// Lateral motion inside one region emits nothing
func (r *Router) moveTo(st *pointerState, hit ButtonID) bool {
	if hit != st.region {
		r.leave(st.region)
		r.enter(hit)
		st.region = hit
	}
	return hit != NoButton
}

func (r *Router) enter(id ButtonID) {
	if id == NoButton {
		return
	}
	r.regions[id].holders++
	if r.regions[id].holders == 1 {
		r.emit(id, Press)
	}
}

func (r *Router) leave(id ButtonID) {
	if id == NoButton || r.regions[id].holders == 0 {
		return
	}
	r.regions[id].holders--
	if r.regions[id].holders == 0 {
		r.emit(id, Release)
	}
}

// emit queues an event, spilling to the backlog to preserve order when the ring is full
func (r *Router) emit(id ButtonID, t Transition) {
	r.seq++
	ev := Event{Button: id, Transition: t, Seq: r.seq}
	r.stats.Events++

	if len(r.backlog) == 0 && r.queue.Push(ev) {
		return
	}
	r.backlog = append(r.backlog, ev)
	r.stats.Spilled++
}

// flushBacklog moves spilled events into the ring in order; caller holds mu
func (r *Router) flushBacklog() {
	n := 0
	for n < len(r.backlog) && r.queue.Push(r.backlog[n]) {
		n++
	}
	if n == 0 {
		return
	}
	if n == len(r.backlog) {
		r.backlog = r.backlog[:0]
		return
	}
	r.backlog = append(r.backlog[:0], r.backlog[n:]...)
}

// DrainNextEvent removes and returns the oldest queued event without blocking
// An empty ring is refilled from the backlog so a drain loop sees every spilled event
func (r *Router) DrainNextEvent() (Event, bool) {
	if ev, ok := r.queue.Pop(); ok {
		return ev, true
	}

	r.mu.Lock()
	r.flushBacklog()
	r.mu.Unlock()
	return r.queue.Pop()
}

// Pending returns the approximate number of events awaiting drain, backlog included
func (r *Router) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queue.Len() + len(r.backlog)
}

// CommitFrame ends the consumer's frame: refills the ring from the backlog and
// returns then resets the per-frame statistics
func (r *Router) CommitFrame() FrameStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flushBacklog()
	stats := r.stats
	r.stats = FrameStats{}
	return stats
}

// Reset releases every held region and forgets all pointers
// Used when the host stops delivering input (focus loss, disconnect)
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flushBacklog()
	for _, id := range slices.Sorted(maps.Keys(r.pointers)) {
		r.leave(r.pointers[id].region)
		delete(r.pointers, id)
	}
}
