// Package tui is the terminal frontend: it maps tcell key events to session
// commands, draws the board with two terminal columns per cell and plays
// short sound cues through beep.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/session"
)

// Command translates a key press into a session command. The vi movement keys
// work alongside the arrows.
func Command(ev *tcell.EventKey) (session.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return session.Confirm, true
	case tcell.KeyLeft:
		return session.MoveLeft, true
	case tcell.KeyRight:
		return session.MoveRight, true
	case tcell.KeyDown:
		return session.SoftDrop, true
	case tcell.KeyEnter:
		return session.Stop, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return session.HardDrop, true
		case 'k':
			return session.Confirm, true
		case 'h':
			return session.MoveLeft, true
		case 'l':
			return session.MoveRight, true
		case 'j':
			return session.SoftDrop, true
		}
	}
	return 0, false
}

// Quit reports whether the key closes the program.
func Quit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
