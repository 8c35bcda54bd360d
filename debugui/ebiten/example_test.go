package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/session"
)

// Game implements ebiten.Game and draws the debug windows over a session.
type Game struct {
	scheduler *session.Scheduler
	backend   *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Systems, including the ImguiSystem, run inside the ImGui frame
	g.backend.Frame(func() {
		g.scheduler.Once(1.0 / 60.0)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	cfg := config.Default()
	palette, err := cfg.Palette()
	if err != nil {
		panic(err)
	}

	backend := debugui_ebiten.NewImguiBackend("blockfall debug", 1280, 720)

	s := session.New(palette)
	scheduler := session.NewScheduler(s)
	tally := session.Standard(scheduler, cfg.Gravity)
	debugui.Install(scheduler, tally, 620)

	scheduler.Commands().Push(session.Confirm)

	if err := ebiten.RunGame(&Game{scheduler: scheduler, backend: backend}); err != nil {
		panic(err)
	}
}
