package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blocksgame/input"
)

// PointerTranslator converts primary-button mouse reports into pointer samples
// Terminals report button state, not edges; the translator derives down/move/up
// from consecutive reports
type PointerTranslator struct {
	width, height float64
	down          bool
}

// NewPointerTranslator maps the terminal grid onto a logical canvas
func NewPointerTranslator(width, height float64) *PointerTranslator {
	return &PointerTranslator{width: width, height: height}
}

// Translate returns the sample for ev, or false when the report carries no edge or drag
// Samples are placed at the center of the reported cell
func (t *PointerTranslator) Translate(ev *tcell.EventMouse, cols, rows int) (input.Sample, bool) {
	if cols < 1 || rows < 1 {
		return input.Sample{}, false
	}

	cx, cy := ev.Position()
	x := (float64(cx) + 0.5) * t.width / float64(cols)
	y := (float64(cy) + 0.5) * t.height / float64(rows)
	s := input.Sample{Pointer: input.PointerMouse, X: x, Y: y}

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !t.down:
		t.down = true
		s.Kind = input.SampleDown
	case pressed:
		s.Kind = input.SampleMove
	case t.down:
		t.down = false
		s.Kind = input.SampleUp
	default:
		// Hover or other buttons
		return input.Sample{}, false
	}
	return s, true
}

// Down reports whether the primary button is held
func (t *PointerTranslator) Down() bool {
	return t.down
}

// Release ends a held press, returning the up sample for the mouse pointer
// Used on focus loss, when the terminal will not report the button going up
func (t *PointerTranslator) Release() (input.Sample, bool) {
	if !t.down {
		return input.Sample{}, false
	}
	t.down = false
	return input.Sample{Kind: input.SampleUp, Pointer: input.PointerMouse}, true
}
