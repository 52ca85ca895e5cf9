package blocks

import "image/color"

// Kind identifies one of the seven tetrominoes
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindCount
)

func (k Kind) String() string {
	if k < KindCount {
		return string("IOTSZJL"[k])
	}
	return "?"
}

// Palette holds one color per kind; board cells store kind+1 so zero is empty
var Palette = []color.RGBA{
	KindI: {R: 0, G: 240, B: 240, A: 255},
	KindO: {R: 240, G: 240, B: 0, A: 255},
	KindT: {R: 160, G: 0, B: 240, A: 255},
	KindS: {R: 0, G: 240, B: 0, A: 255},
	KindZ: {R: 240, G: 0, B: 0, A: 255},
	KindJ: {R: 0, G: 0, B: 240, A: 255},
	KindL: {R: 240, G: 160, B: 0, A: 255},
}

// Point is a board cell coordinate
type Point struct {
	X, Y int
}

// shape is a piece in its spawn orientation inside an n×n rotation box
type shape struct {
	box   int
	cells [4]Point
}

var shapes = [KindCount]shape{
	KindI: {4, [4]Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
	KindO: {2, [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	KindT: {3, [4]Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
	KindS: {3, [4]Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
	KindZ: {3, [4]Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	KindJ: {3, [4]Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}}},
	KindL: {3, [4]Point{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
}

// Piece is the falling tetromino; X, Y locate its rotation box on the board
type Piece struct {
	Kind     Kind
	Rotation int // Quarter turns clockwise, 0..3
	X, Y     int
}

// Cells returns the board cells covered by p
func (p Piece) Cells() [4]Point {
	sh := shapes[p.Kind]
	var out [4]Point
	for i, c := range sh.cells {
		for r := 0; r < p.Rotation; r++ {
			c = Point{X: sh.box - 1 - c.Y, Y: c.X}
		}
		out[i] = Point{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}

func (p Piece) rotated() Piece {
	p.Rotation = (p.Rotation + 1) % 4
	return p
}

func (p Piece) moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
