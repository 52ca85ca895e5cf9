package parameter

// Tint alphas on the 0-255 scale
const (
	// SpriteTintAlpha is the alpha of the gameplay color drawn over the base tile (~25%)
	SpriteTintAlpha = 63

	// PauseTintAlpha is the alpha of the overlay drawn while paused
	PauseTintAlpha = 40
)

// PauseTint RGB
const (
	PauseTintR = 255
	PauseTintG = 63
	PauseTintB = 63
)

// Terminal canvas
const (
	// PixelsPerCell is the vertical pixel count per terminal cell (upper half block)
	PixelsPerCell = 2

	// HalfBlock is the glyph used to draw two vertical pixels in one cell
	HalfBlock = '▀'
)
