package session_test

import (
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var square = tetris.ShapeFromInts([][]int{{1, 1}, {1, 1}})

// squares is a palette that only ever spawns a red 2x2 square.
func squares() *tetris.Palette {
	return &tetris.Palette{
		Colors: []tetris.Color{"red"},
		Shapes: []tetris.Shape{square},
	}
}

func constant() tetris.Source {
	return tetris.NewSequence(0)
}

func quiet() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func newSession() (*session.Session, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := session.New(squares(), session.WithSource(constant), session.WithLogger(logger))
	return s, hook
}

// fillSquareRows drops five squares side by side, clearing the bottom two rows.
func fillSquareRows(commands *session.Commands) {
	for _, dx := range []int{-3, -1, 1, 3, 5} {
		cmd := session.MoveRight
		if dx < 0 {
			cmd = session.MoveLeft
			dx = -dx
		}
		for range dx {
			commands.Push(cmd)
		}
		commands.Push(session.HardDrop)
	}
}

func kinds(events []session.Event) []session.EventKind {
	out := make([]session.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}
