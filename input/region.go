package input

// Rect is an axis-aligned rectangle in logical coordinates
// Bounds are half-open so adjacent regions never both contain a shared edge
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies within [X, X+W) x [Y, Y+H)
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// region is a registered hit area with its pressed state
type region struct {
	rect    Rect
	holders int // Pointers currently inside while down; pressed when > 0
}

// pointerState tracks one pointer between samples
type pointerState struct {
	down   bool
	region ButtonID
}
