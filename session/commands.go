package session

import "fmt"

// Command is a player action queued by an input layer.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	// Confirm starts, restarts or rotates depending on the phase.
	Confirm
	Stop
)

func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case SoftDrop:
		return "soft-drop"
	case Rotate:
		return "rotate"
	case HardDrop:
		return "hard-drop"
	case Confirm:
		return "confirm"
	case Stop:
		return "stop"
	default:
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
}

// Commands buffers player commands between frames. Input handlers push as
// keys arrive; the InputSystem applies the buffer in order once per frame.
type Commands struct {
	queue []Command
}

func NewCommands() *Commands {
	return &Commands{}
}

// Push queues a command for the next frame.
func (c *Commands) Push(cmd Command) {
	c.queue = append(c.queue, cmd)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Flush applies every queued command to the session in arrival order and
// resets the buffer. Commands that do not apply in the current phase are
// dropped.
func (c *Commands) Flush(s *Session) {
	for _, cmd := range c.queue {
		apply(s, cmd)
	}
	c.queue = c.queue[:0]
}

func apply(s *Session, cmd Command) {
	switch cmd {
	case MoveLeft:
		s.MoveLeft()
	case MoveRight:
		s.MoveRight()
	case SoftDrop:
		s.Step()
	case Rotate:
		s.Rotate()
	case HardDrop:
		s.Drop()
	case Confirm:
		s.Confirm()
	case Stop:
		s.Stop()
	}
}
