package tetris

import "fmt"

// OutcomeKind tags the result of a gravity step.
type OutcomeKind uint8

const (
	// Halted means the engine had already stopped and nothing happened.
	Halted OutcomeKind = iota
	// Stepped means the piece moved down one row.
	Stepped
	// Locked means the piece landed, lines were cleared and a new piece spawned.
	Locked
	// GameOver means the piece landed and the next spawn collided.
	GameOver
)

func (k OutcomeKind) String() string {
	switch k {
	case Halted:
		return "halted"
	case Stepped:
		return "stepped"
	case Locked:
		return "locked"
	case GameOver:
		return "game-over"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", uint8(k))
	}
}

// Outcome is what MoveDown and Drop report. Lines is the number of rows cleared
// by the lock, zero for Stepped and Halted.
type Outcome struct {
	Kind  OutcomeKind
	Lines int
}

// Landed reports whether the step ended with the piece locked into the board.
func (o Outcome) Landed() bool {
	return o.Kind == Locked || o.Kind == GameOver
}

func (o Outcome) String() string {
	if o.Landed() {
		return fmt.Sprintf("%s(lines=%d)", o.Kind, o.Lines)
	}
	return o.Kind.String()
}
