package render

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/blocksgame/parameter"
)

// textCell is a glyph written over the pixel layer for one frame
type textCell struct {
	r  rune
	fg colorful.Color
}

// Canvas maps the logical canvas onto a terminal grid
// Each cell carries two vertical pixels drawn with the upper half block:
// foreground is the top pixel, background the bottom pixel
type Canvas struct {
	screen tcell.Screen

	width, height float64 // Logical size
	cols, rows    int     // Terminal grid
	pixels        []colorful.Color
	text          []textCell
}

// NewCanvas creates a canvas of the given logical size sized to the screen grid
func NewCanvas(width, height float64, screen tcell.Screen) *Canvas {
	c := &Canvas{
		screen: screen,
		width:  width,
		height: height,
	}
	cols, rows := 1, 1
	if screen != nil {
		cols, rows = screen.Size()
	}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the grid; contents are cleared
func (c *Canvas) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c.cols, c.rows = cols, rows
	c.pixels = make([]colorful.Color, cols*rows*parameter.PixelsPerCell)
	c.text = make([]textCell, cols*rows)
}

// Grid returns the terminal grid size
func (c *Canvas) Grid() (cols, rows int) {
	return c.cols, c.rows
}

// Bounds returns the full logical canvas
func (c *Canvas) Bounds() Rect {
	return Rect{W: c.width, H: c.height}
}

// pixelSpan converts a logical rect into a clipped pixel range [x0,x1) x [y0,y1)
func (c *Canvas) pixelSpan(r Rect) (x0, y0, x1, y1 int) {
	pw := float64(c.cols) / c.width
	ph := float64(c.rows*parameter.PixelsPerCell) / c.height

	x0 = clampInt(int(math.Round(r.X*pw)), 0, c.cols)
	x1 = clampInt(int(math.Round((r.X+r.W)*pw)), 0, c.cols)
	y0 = clampInt(int(math.Round(r.Y*ph)), 0, c.rows*parameter.PixelsPerCell)
	y1 = clampInt(int(math.Round((r.Y+r.H)*ph)), 0, c.rows*parameter.PixelsPerCell)
	return
}

// DrawImage scales img into dst by sampling the source at each pixel center
func (c *Canvas) DrawImage(img image.Image, dst Rect) {
	if img == nil || dst.W <= 0 || dst.H <= 0 {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}

	pw := c.width / float64(c.cols)
	ph := c.height / float64(c.rows*parameter.PixelsPerCell)
	x0, y0, x1, y1 := c.pixelSpan(dst)

	for py := y0; py < y1; py++ {
		ly := (float64(py) + 0.5) * ph
		sy := b.Min.Y + clampInt(int((ly-dst.Y)/dst.H*float64(b.Dy())), 0, b.Dy()-1)
		row := py * c.cols
		for px := x0; px < x1; px++ {
			lx := (float64(px) + 0.5) * pw
			sx := b.Min.X + clampInt(int((lx-dst.X)/dst.W*float64(b.Dx())), 0, b.Dx()-1)
			c.pixels[row+px] = blendOver(c.pixels[row+px], img.At(sx, sy))
		}
	}
}

// Fill composites col over dst
func (c *Canvas) Fill(dst Rect, col color.Color) {
	x0, y0, x1, y1 := c.pixelSpan(dst)
	for py := y0; py < y1; py++ {
		row := py * c.cols
		for px := x0; px < x1; px++ {
			c.pixels[row+px] = blendOver(c.pixels[row+px], col)
		}
	}
}

// DrawText places text on the cell row containing y, clipped at the right edge
func (c *Canvas) DrawText(x, y float64, text string, col color.Color) {
	cx := int(x * float64(c.cols) / c.width)
	cy := int(y * float64(c.rows) / c.height)
	if cy < 0 || cy >= c.rows {
		return
	}
	fg := toColorful(col)
	for _, r := range text {
		if cx >= c.cols {
			return
		}
		if cx >= 0 {
			c.text[cy*c.cols+cx] = textCell{r: r, fg: fg}
		}
		cx++
	}
}

// PixelAt returns the composited pixel at grid position (px, py)
func (c *Canvas) PixelAt(px, py int) colorful.Color {
	if px < 0 || px >= c.cols || py < 0 || py >= c.rows*parameter.PixelsPerCell {
		return colorful.Color{}
	}
	return c.pixels[py*c.cols+px]
}

// Show flushes the frame to the screen, clears the text layer and follows terminal resizes
func (c *Canvas) Show() {
	if c.screen == nil {
		return
	}

	for cy := 0; cy < c.rows; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			top := c.pixels[(cy*2)*c.cols+cx]
			bottom := c.pixels[(cy*2+1)*c.cols+cx]

			if t := c.text[cy*c.cols+cx]; t.r != 0 {
				bg := top.BlendRgb(bottom, 0.5)
				style := tcell.StyleDefault.Foreground(toTcell(t.fg)).Background(toTcell(bg))
				c.screen.SetContent(cx, cy, t.r, nil, style)
				continue
			}

			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			c.screen.SetContent(cx, cy, parameter.HalfBlock, nil, style)
		}
	}
	c.screen.Show()

	clear(c.text)
	if cols, rows := c.screen.Size(); cols != c.cols || rows != c.rows {
		c.Resize(cols, rows)
	}
}

func toTcell(col colorful.Color) tcell.Color {
	r, g, b := col.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
