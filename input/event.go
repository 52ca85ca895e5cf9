package input

// ButtonID is the opaque handle returned by Router.RegisterButton
// Handles are dense and assigned in registration order starting at 0
type ButtonID int

// NoButton marks the absence of a region
const NoButton ButtonID = -1

// Transition is the edge carried by an event
type Transition uint8

const (
	Release Transition = 0
	Press   Transition = 1
)

// String returns human-readable transition name
func (t Transition) String() string {
	if t == Press {
		return "Press"
	}
	return "Release"
}

// Event is an immutable button edge in submission order
type Event struct {
	Button     ButtonID
	Transition Transition
	Seq        uint64 // Monotonic per router, starts at 1
}

// FrameStats summarizes router activity between two CommitFrame calls
type FrameStats struct {
	Samples int // Samples submitted
	Events  int // Events produced
	Spilled int // Events that overflowed the ring into the backlog
}
