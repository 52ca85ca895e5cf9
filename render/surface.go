package render

import (
	"image"
	"image/color"
)

// Rect is an axis-aligned rectangle in logical canvas coordinates
type Rect struct {
	X, Y, W, H float64
}

// Surface is the draw target handed to the presentation layer and the gameplay engine
// All coordinates are logical; the implementation maps them to device pixels
type Surface interface {
	// Bounds returns the full logical canvas
	Bounds() Rect

	// DrawImage scales img into dst (nearest neighbor), honoring source alpha
	DrawImage(img image.Image, dst Rect)

	// Fill composites c over dst using the color's alpha
	Fill(dst Rect, c color.Color)

	// DrawText writes a single line starting at (x, y)
	DrawText(x, y float64, text string, c color.Color)
}

// Target is a Surface that can present its contents
type Target interface {
	Surface
	Show()
}
