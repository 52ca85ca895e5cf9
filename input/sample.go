package input

// SampleKind discriminates raw pointer observations
type SampleKind uint8

const (
	SampleDown SampleKind = iota
	SampleMove
	SampleUp
)

// String returns human-readable sample kind
func (k SampleKind) String() string {
	switch k {
	case SampleDown:
		return "Down"
	case SampleMove:
		return "Move"
	case SampleUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerID identifies an independently tracked pointer (mouse, touch sequence)
type PointerID uint32

// PointerMouse is the identity used for the single terminal mouse pointer
const PointerMouse PointerID = 0

// Sample is a single raw pointer observation in logical canvas coordinates
type Sample struct {
	Kind    SampleKind
	Pointer PointerID
	X, Y    float64
}
