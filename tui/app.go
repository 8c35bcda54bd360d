package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/session"
	"github.com/sirupsen/logrus"
)

// App owns the terminal loop. Key events arrive from tcell on their own
// goroutine and are handed to the loop over a channel; the session is only
// touched by the loop.
type App struct {
	Screen    tcell.Screen
	Scheduler *session.Scheduler
	Renderer  *Renderer
	Tick      time.Duration
	Log       logrus.FieldLogger
}

// Run processes keys and frames until the context is cancelled or a quit key
// is pressed.
func (a *App) Run(ctx context.Context) {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go a.Screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(a.Tick)
	defer ticker.Stop()

	a.Scheduler.Tick(time.Now())
	a.Renderer.Draw(a.Scheduler.Session())

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-events:
			if !ok {
				return
			}
			if !a.handle(ev) {
				return
			}

		case now := <-ticker.C:
			a.Scheduler.Tick(now)
			a.Renderer.Draw(a.Scheduler.Session())
		}
	}
}

func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if Quit(ev) {
			if a.Log != nil {
				a.Log.Debug("quit requested")
			}
			return false
		}
		if cmd, ok := Command(ev); ok {
			a.Scheduler.Commands().Push(cmd)
		}

	case *tcell.EventResize:
		a.Screen.Sync()
	}
	return true
}
