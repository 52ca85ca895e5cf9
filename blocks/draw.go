package blocks

import (
	"fmt"
	"image/color"

	"github.com/lixenwraith/blocksgame/parameter"
	"github.com/lixenwraith/blocksgame/render"
)

var (
	boardShade = color.NRGBA{A: 96}
	scoreColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// layout fits the board below the button strip, centered horizontally
func (g *Game) layout(b render.Rect) (x0, y0, size float64) {
	top := b.Y + b.H*parameter.BoardTop
	avail := b.H*parameter.BoardBottom - b.H*parameter.BoardTop
	size = min(b.W/float64(g.cols), avail/float64(g.rows))
	x0 = b.X + (b.W-size*float64(g.cols))/2
	return x0, top, size
}

// Draw renders settled blocks, the falling piece and the optional score line
func (g *Game) Draw(s render.Surface) {
	x0, y0, size := g.layout(s.Bounds())

	s.Fill(render.Rect{X: x0, Y: y0, W: size * float64(g.cols), H: size * float64(g.rows)}, boardShade)

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if v := g.board[y*g.cols+x]; v != 0 {
				g.drawCell(s, int(v), x0+float64(x)*size, y0+float64(y)*size, size)
			}
		}
	}
	for _, c := range g.piece.Cells() {
		g.drawCell(s, int(g.piece.Kind)+1, x0+float64(c.X)*size, y0+float64(c.Y)*size, size)
	}

	if g.showScore {
		text := fmt.Sprintf("SCORE %d  LINES %d  LV %d", g.score, g.lines, g.level)
		s.DrawText(x0, y0+size/2, text, scoreColor)
	}
}

func (g *Game) drawCell(s render.Surface, v int, x, y, size float64) {
	dst := render.Rect{X: x, Y: y, W: size, H: size}
	if v < len(g.sprites) && g.sprites[v] != nil {
		s.DrawImage(g.sprites[v], dst)
		return
	}
	s.Fill(dst, Palette[v-1])
}
