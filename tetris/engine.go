// Package tetris implements the game-state engine of a falling-block puzzle:
// the board, the active piece, collision, locking, line clearing and rotation.
//
// The engine has no notion of time and performs no I/O. A driver calls its
// operations on gravity ticks and key presses and redraws from its state after
// every call. Illegal moves are rejected silently; the only terminal condition
// is Running returning false.
package tetris

// PointsPerLine is the score awarded for every cleared row.
const PointsPerLine = 30

// Engine owns one game: the board, the falling piece, the score and the
// lifecycle flags. Restarting means constructing a new Engine.
type Engine struct {
	board   *Board
	piece   *Piece
	palette *Palette
	rng     Source

	score   int
	lines   int
	pieces  int
	running bool
	over    bool
}

// NewEngine creates a running engine with an empty board and spawns the first
// piece. palette must contain at least one shape and one color.
func NewEngine(palette *Palette, rng Source) *Engine {
	e := &Engine{
		board:   NewBoard(),
		palette: palette,
		rng:     rng,
		running: true,
	}
	e.Spawn()
	return e
}

// Board returns the live board. It is owned by the engine.
func (e *Engine) Board() *Board { return e.board }

// Piece returns the live active piece. It is owned by the engine.
func (e *Engine) Piece() *Piece { return e.piece }

func (e *Engine) Score() int    { return e.score }
func (e *Engine) Running() bool { return e.running }
func (e *Engine) Over() bool    { return e.over }

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int { return e.lines }

// Pieces returns how many pieces have been spawned, including the active one.
func (e *Engine) Pieces() int { return e.pieces }

// Spawn replaces the active piece with a new random one at the spawn position.
// If the new piece already collides the game is over.
func (e *Engine) Spawn() {
	if !e.running {
		return
	}

	e.piece = NewPiece(e.palette, e.rng)
	e.pieces++

	if e.Collides(e.piece.Shape, e.piece.X, e.piece.Y) {
		e.running = false
		e.over = true
	}
}

// Collides reports whether shape placed with its top-left corner at (x, y)
// leaves the board or overlaps a locked cell.
func (e *Engine) Collides(shape Shape, x, y int) bool {
	for cx, cy := range shape.Cells() {
		bx, by := x+cx, y+cy
		if !InBounds(bx, by) || e.board.Occupied(bx, by) {
			return true
		}
	}
	return false
}

// MoveDown applies one gravity step. If the piece cannot fall it is locked,
// full rows are cleared and the next piece is spawned.
func (e *Engine) MoveDown() Outcome {
	if !e.running {
		return Outcome{Kind: Halted}
	}

	e.piece.Y++
	if !e.Collides(e.piece.Shape, e.piece.X, e.piece.Y) {
		return Outcome{Kind: Stepped}
	}
	e.piece.Y--

	e.Lock()
	lines := e.ClearLines()
	e.Spawn()

	if !e.running {
		return Outcome{Kind: GameOver, Lines: lines}
	}
	return Outcome{Kind: Locked, Lines: lines}
}

// Drop moves the piece down until it lands.
func (e *Engine) Drop() Outcome {
	for {
		outcome := e.MoveDown()
		if outcome.Kind != Stepped {
			return outcome
		}
	}
}

func (e *Engine) MoveLeft() bool {
	return e.shift(-1)
}

func (e *Engine) MoveRight() bool {
	return e.shift(1)
}

func (e *Engine) shift(dx int) bool {
	if !e.running {
		return false
	}

	e.piece.X += dx
	if e.Collides(e.piece.Shape, e.piece.X, e.piece.Y) {
		e.piece.X -= dx
		return false
	}
	return true
}

// Rotate turns the piece clockwise in place. The rotation is rejected if the
// rotated shape collides at the current position; no offsets are tried.
func (e *Engine) Rotate() bool {
	if !e.running {
		return false
	}

	rotated := e.piece.Rotate()
	if e.Collides(rotated, e.piece.X, e.piece.Y) {
		return false
	}
	e.piece.Shape = rotated
	return true
}

// Lock writes the piece color into every board cell the piece covers.
// The piece must be in bounds.
func (e *Engine) Lock() {
	if !e.running {
		return
	}

	for cx, cy := range e.piece.Shape.Cells() {
		e.board.Set(e.piece.X+cx, e.piece.Y+cy, e.piece.Color)
	}
}

// ClearLines removes every full row and scores PointsPerLine for each.
// It returns the number of rows removed.
func (e *Engine) ClearLines() int {
	if !e.running {
		return 0
	}

	cleared := e.board.removeFullRows()
	e.lines += cleared
	e.score += cleared * PointsPerLine
	return cleared
}

// Stop ends the game at the player's request.
func (e *Engine) Stop() {
	e.over = true
	e.running = false
}

// GhostY returns the row the active piece would land on if dropped.
func (e *Engine) GhostY() int {
	y := e.piece.Y
	if e.piece.Shape.Count() == 0 {
		return y
	}
	for !e.Collides(e.piece.Shape, e.piece.X, y+1) {
		y++
	}
	return y
}
