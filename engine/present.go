package engine

import (
	"context"
	"image/color"

	"github.com/lixenwraith/blocksgame/parameter"
	"github.com/lixenwraith/blocksgame/render"
)

// PauseTint is the overlay composited over the background while paused
var PauseTint = color.NRGBA{
	R: parameter.PauseTintR,
	G: parameter.PauseTintG,
	B: parameter.PauseTintB,
	A: parameter.PauseTintAlpha,
}

// Render draws background, pause overlay and the gameplay frame
// Reads loop state only; the paused-frame delay lowers the redraw rate while paused
func (l *Loop) Render(ctx context.Context, s render.Surface) {
	full := s.Bounds()
	s.DrawImage(l.background, full)

	if l.clock.Paused() {
		s.Fill(full, PauseTint)
		l.pacer.Sleep(ctx, l.cfg.PauseFrameDelay)
	}

	l.game.Draw(s)
}
