// Package blocks implements the falling-block rules driven by the game loop
package blocks

import (
	"image"
	"math/rand"
	"time"

	"github.com/kataras/golog"

	"github.com/lixenwraith/blocksgame/parameter"
)

var logger = golog.Child("[blocks]")

// Effects receives gameplay cues; satisfied by audio.Player
type Effects interface {
	PlayLock()
	PlayClear(lines int)
}

// Config sizes the board
type Config struct {
	Columns, Rows int
}

// kickOffsets are the horizontal shifts tried when a rotation collides
var kickOffsets = [...]int{0, -1, 1, -2, 2}

// Game is the board state; all methods run on the loop goroutine
type Game struct {
	cols, rows int
	board      []uint8 // Row-major; 0 empty, kind+1 otherwise

	rng     *rand.Rand
	sprites []image.Image
	effects Effects

	piece Piece
	next  Kind

	left, right, drop bool
	repeatTimer       time.Duration
	gravityTimer      time.Duration

	score, lines, level int
	showScore           bool
	resets              int
}

// New creates a game with an injected random source for piece selection
// sprites may be nil; index i draws palette color i-1
func New(cfg Config, rng *rand.Rand, sprites []image.Image) *Game {
	if cfg.Columns <= 0 {
		cfg.Columns = parameter.BoardColumns
	}
	if cfg.Rows <= 0 {
		cfg.Rows = parameter.BoardRows
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		cols:    cfg.Columns,
		rows:    cfg.Rows,
		board:   make([]uint8, cfg.Columns*cfg.Rows),
		rng:     rng,
		sprites: sprites,
	}
	g.next = g.randomKind()
	g.spawn()
	return g
}

// SetEffects wires lock and clear cues
func (g *Game) SetEffects(e Effects) {
	g.effects = e
}

func (g *Game) randomKind() Kind {
	return Kind(g.rng.Intn(int(KindCount)))
}

// MoveLeft starts or stops leftward movement; a press shifts immediately
func (g *Game) MoveLeft(active bool) {
	g.left = active
	if active {
		g.shift(-1)
		g.repeatTimer = parameter.RepeatDelay
	}
}

// MoveRight starts or stops rightward movement; a press shifts immediately
func (g *Game) MoveRight(active bool) {
	g.right = active
	if active {
		g.shift(1)
		g.repeatTimer = parameter.RepeatDelay
	}
}

// FastDrop switches gravity to the fast interval while held
func (g *Game) FastDrop(active bool) {
	g.drop = active
}

// Rotate turns the piece clockwise, shifting sideways if the turn collides
func (g *Game) Rotate() {
	turned := g.piece.rotated()
	for _, dx := range kickOffsets {
		if cand := turned.moved(dx, 0); g.fits(cand) {
			g.piece = cand
			return
		}
	}
}

// ToggleScore shows or hides the score line
func (g *Game) ToggleScore() {
	g.showScore = !g.showScore
}

// Update advances lateral auto-repeat and gravity
func (g *Game) Update(delta time.Duration) {
	if delta <= 0 {
		return
	}

	if dir := g.direction(); dir != 0 {
		g.repeatTimer -= delta
		for g.repeatTimer <= 0 {
			g.shift(dir)
			g.repeatTimer += parameter.RepeatInterval
		}
	}

	interval := g.gravityInterval()
	g.gravityTimer += delta
	for g.gravityTimer >= interval {
		g.gravityTimer -= interval
		if !g.fall() {
			g.gravityTimer = 0
			return
		}
	}
}

// direction is -1, 0 or 1; opposing holds cancel
func (g *Game) direction() int {
	switch {
	case g.left && !g.right:
		return -1
	case g.right && !g.left:
		return 1
	}
	return 0
}

func (g *Game) gravityInterval() time.Duration {
	if g.drop {
		return parameter.FastDropInterval
	}
	d := parameter.GravityInterval - time.Duration(g.level)*parameter.GravityLevelStep
	if d < parameter.GravityMinInterval {
		return parameter.GravityMinInterval
	}
	return d
}

func (g *Game) shift(dx int) bool {
	if cand := g.piece.moved(dx, 0); g.fits(cand) {
		g.piece = cand
		return true
	}
	return false
}

// fall moves the piece one row down; returns false when it locked instead
func (g *Game) fall() bool {
	if cand := g.piece.moved(0, 1); g.fits(cand) {
		g.piece = cand
		return true
	}
	g.lock()
	return false
}

func (g *Game) fits(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= g.cols || c.Y < 0 || c.Y >= g.rows {
			return false
		}
		if g.board[c.Y*g.cols+c.X] != 0 {
			return false
		}
	}
	return true
}

// lock writes the piece into the board, clears full rows and spawns the next piece
func (g *Game) lock() {
	for _, c := range g.piece.Cells() {
		g.board[c.Y*g.cols+c.X] = uint8(g.piece.Kind) + 1
	}

	cleared := g.clearRows()
	if cleared > 0 {
		g.score += parameter.LineScores[min(cleared, len(parameter.LineScores)-1)] * (g.level + 1)
		g.lines += cleared
		g.level = g.lines / parameter.LinesPerLevel
		if g.effects != nil {
			g.effects.PlayClear(cleared)
		}
	} else if g.effects != nil {
		g.effects.PlayLock()
	}

	g.spawn()
}

// clearRows removes full rows, compacting the board downward
func (g *Game) clearRows() int {
	cleared := 0
	dst := g.rows - 1
	for src := g.rows - 1; src >= 0; src-- {
		row := g.board[src*g.cols : (src+1)*g.cols]
		if full(row) {
			cleared++
			continue
		}
		if dst != src {
			copy(g.board[dst*g.cols:(dst+1)*g.cols], row)
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		clear(g.board[dst*g.cols : (dst+1)*g.cols])
	}
	return cleared
}

func full(row []uint8) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}

// spawn places the next piece at the top center; a blocked spawn restarts the game
func (g *Game) spawn() {
	kind := g.next
	g.next = g.randomKind()
	g.piece = Piece{Kind: kind, X: (g.cols - shapes[kind].box) / 2}
	g.gravityTimer = 0

	if !g.fits(g.piece) {
		logger.Infof("top out: score %d, lines %d, level %d", g.score, g.lines, g.level)
		clear(g.board)
		g.score, g.lines, g.level = 0, 0, 0
		g.resets++
	}
}

// Score returns the current score
func (g *Game) Score() int { return g.score }

// Lines returns the cleared line count
func (g *Game) Lines() int { return g.lines }

// Level returns the current level
func (g *Game) Level() int { return g.level }

// Resets returns how many times the board topped out
func (g *Game) Resets() int { return g.resets }

// ScoreVisible reports whether the score line is drawn
func (g *Game) ScoreVisible() bool { return g.showScore }

// Current returns the falling piece
func (g *Game) Current() Piece { return g.piece }

// Next returns the upcoming kind
func (g *Game) Next() Kind { return g.next }

// Cell returns the board value at (x, y): 0 for empty, kind+1 for a settled block
func (g *Game) Cell(x, y int) int {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return 0
	}
	return int(g.board[y*g.cols+x])
}
