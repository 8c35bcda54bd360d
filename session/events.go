package session

import "fmt"

type EventKind uint8

const (
	// Started: a game began.
	Started EventKind = iota
	// Locked: a piece landed. Lines holds the rows it cleared, possibly zero.
	Locked
	// GameOver: a spawn collided after a lock.
	GameOver
	// Stopped: the player ended the game.
	Stopped
)

func (k EventKind) String() string {
	switch k {
	case Started:
		return "started"
	case Locked:
		return "locked"
	case GameOver:
		return "game-over"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is a session transition recorded during a frame. Game and Score are
// taken at the moment the event was recorded.
type Event struct {
	Kind  EventKind
	Game  int
	Lines int
	Score int
}

// Ended reports whether the event finished a game.
func (e Event) Ended() bool {
	return e.Kind == GameOver || e.Kind == Stopped
}
