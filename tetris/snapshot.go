package tetris

// Snapshot is a copy of everything a renderer needs, detached from the engine.
type Snapshot struct {
	Board   [Rows][Cols]Color
	Piece   Piece
	GhostY  int
	Score   int
	Lines   int
	Running bool
	Over    bool
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:   e.board.Cells(),
		Piece:   e.piece.Clone(),
		GhostY:  e.GhostY(),
		Score:   e.score,
		Lines:   e.lines,
		Running: e.running,
		Over:    e.over,
	}
}

// Cells returns the board with the active piece drawn on top. Piece cells
// outside the board are skipped.
func (s Snapshot) Cells() [Rows][Cols]Color {
	cells := s.Board
	for cx, cy := range s.Piece.Shape.Cells() {
		x, y := s.Piece.X+cx, s.Piece.Y+cy
		if InBounds(x, y) {
			cells[y][x] = s.Piece.Color
		}
	}
	return cells
}
