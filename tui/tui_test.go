package tui_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tui"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squares() *tetris.Palette {
	return &tetris.Palette{
		Colors: []tetris.Color{"red"},
		Shapes: []tetris.Shape{tetris.ShapeFromInts([][]int{{1, 1}, {1, 1}})},
	}
}

func newSession() *session.Session {
	logger, _ := test.NewNullLogger()
	return session.New(squares(),
		session.WithSource(func() tetris.Source { return tetris.NewSequence(0) }),
		session.WithLogger(logger),
	)
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	return screen
}

func readText(screen tcell.Screen, x, y, n int) string {
	var b strings.Builder
	for i := range n {
		r, _, _, _ := screen.GetContent(x+i, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

var red = tcell.NewRGBColor(255, 0, 0)

func TestCommand(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want session.Command
	}{
		{"up confirms", tcell.KeyUp, 0, session.Confirm},
		{"left", tcell.KeyLeft, 0, session.MoveLeft},
		{"right", tcell.KeyRight, 0, session.MoveRight},
		{"down", tcell.KeyDown, 0, session.SoftDrop},
		{"enter stops", tcell.KeyEnter, 0, session.Stop},
		{"space drops", tcell.KeyRune, ' ', session.HardDrop},
		{"vi left", tcell.KeyRune, 'h', session.MoveLeft},
		{"vi right", tcell.KeyRune, 'l', session.MoveRight},
		{"vi down", tcell.KeyRune, 'j', session.SoftDrop},
		{"vi up", tcell.KeyRune, 'k', session.Confirm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := tui.Command(tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone))
			require.True(t, ok)
			assert.Equal(t, tt.want, cmd)
		})
	}

	_, ok := tui.Command(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	assert.False(t, ok)
	_, ok = tui.Command(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	assert.False(t, ok)
}

func TestQuit(t *testing.T) {
	assert.True(t, tui.Quit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, tui.Quit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, tui.Quit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, tui.Quit(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone)))
	assert.False(t, tui.Quit(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
}

func TestRenderIdle(t *testing.T) {
	screen := newScreen(t)
	r, err := tui.NewRenderer(screen, squares())
	require.NoError(t, err)

	r.Draw(newSession())

	// Border corners around the 20x20 column board.
	for _, corner := range [][2]int{{0, 0}, {21, 0}, {0, 21}, {21, 21}} {
		ch, _, _, _ := screen.GetContent(corner[0], corner[1])
		assert.Equal(t, '+', ch, "corner %v", corner)
	}

	// The spawned square covers board cells (3,0)-(4,1): columns 7-10, rows 1-2.
	for _, pos := range [][2]int{{7, 1}, {8, 1}, {10, 2}} {
		assert.Equal(t, red, background(screen, pos[0], pos[1]), "cell %v", pos)
	}
	assert.NotEqual(t, red, background(screen, 11, 1))

	assert.Equal(t, "Score: 0", readText(screen, 24, 1, 20))
	assert.Equal(t, "Press Up to start", readText(screen, 24, 5, 20))
}

func TestRenderPlayingShowsGhost(t *testing.T) {
	screen := newScreen(t)
	r, err := tui.NewRenderer(screen, squares())
	require.NoError(t, err)

	s := newSession()
	require.True(t, s.Start())
	r.Draw(s)

	// The ghost sits on the floor, board rows 18-19.
	assert.Equal(t, "[][]", readText(screen, 7, 19, 4))
	assert.Equal(t, "[][]", readText(screen, 7, 20, 4))
	assert.Equal(t, "Game:  1", readText(screen, 24, 3, 20))
	assert.Empty(t, readText(screen, 24, 5, 20))
}

func TestRenderGameOver(t *testing.T) {
	screen := newScreen(t)
	r, err := tui.NewRenderer(screen, squares())
	require.NoError(t, err)

	s := newSession()
	require.True(t, s.Start())
	s.Drop()
	require.True(t, s.Stop())
	r.Draw(s)

	assert.Equal(t, "GAME OVER", readText(screen, 24, 5, 20))
	assert.Equal(t, "Press Up to restart", readText(screen, 24, 6, 20))
	assert.Equal(t, red, background(screen, 7, 20), "locked square on the floor")
}

func TestNewRendererRejectsUnknownColor(t *testing.T) {
	screen := newScreen(t)
	palette := squares()
	palette.Colors = []tetris.Color{"not-a-color"}

	_, err := tui.NewRenderer(screen, palette)
	assert.Error(t, err)
}

func TestAppRun(t *testing.T) {
	screen := newScreen(t)
	s := newSession()
	scheduler := session.NewScheduler(s)
	session.Standard(scheduler, time.Hour)

	r, err := tui.NewRenderer(screen, squares())
	require.NoError(t, err)

	app := &tui.App{Screen: screen, Scheduler: scheduler, Renderer: r, Tick: time.Millisecond}

	done := make(chan struct{})
	go func() {
		app.Run(context.Background())
		close(done)
	}()

	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("app did not stop on quit key")
	}

	assert.Equal(t, session.Playing, s.Phase())
	assert.Equal(t, 2, s.Engine().Pieces(), "the hard drop spawned a second piece")
}

func TestAppRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	scheduler := session.NewScheduler(newSession())

	r, err := tui.NewRenderer(screen, squares())
	require.NoError(t, err)

	app := &tui.App{Screen: screen, Scheduler: scheduler, Renderer: r, Tick: time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("app did not stop after context cancellation")
	}

	if stats := scheduler.Stats(); stats.Frames == 0 {
		t.Error("expected at least one frame")
	}
}
