package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// blendOver composites src over dst with src alpha, returning an opaque result
func blendOver(dst colorful.Color, src color.Color) colorful.Color {
	_, _, _, a := src.RGBA()
	if a == 0 {
		return dst
	}
	sc, ok := colorful.MakeColor(src)
	if !ok {
		// Zero alpha handled above; MakeColor un-premultiplies the rest
		return dst
	}
	if a == 0xffff {
		return sc
	}
	return dst.BlendRgb(sc, float64(a)/0xffff).Clamped()
}

// toColorful converts any color to an opaque colorful.Color, treating transparent as black
func toColorful(c color.Color) colorful.Color {
	return blendOver(colorful.Color{}, c)
}
