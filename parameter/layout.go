package parameter

// FracRect is a rectangle expressed as fractions of the logical canvas
type FracRect struct {
	X, Y, W, H float64
}

// Button regions as fractions of canvas width (X, W) and height (Y, H)
// Registration order is rotate, left, right, down, pause, sound, score; overlapping
// regions resolve to the earliest registered
var (
	// LayoutRotate covers the upper play area below the top strip
	LayoutRotate = FracRect{0, 0.0625, 1, 0.3125}

	// LayoutLeft is the left half of the middle band
	LayoutLeft = FracRect{0, 0.375, 0.5, 0.375}

	// LayoutRight is the right half of the middle band
	LayoutRight = FracRect{0.5, 0.375, 0.5, 0.375}

	// LayoutDown spans the bottom band, extending past the canvas edge
	LayoutDown = FracRect{0, 0.75, 1, 0.375}

	// Top strip controls
	LayoutPause = FracRect{0.896, 0, 0.1, 0.0625}
	LayoutSound = FracRect{0.79, 0, 0.1, 0.0625}
	LayoutScore = FracRect{0.354, 0, 0.3125, 0.0625}
)
