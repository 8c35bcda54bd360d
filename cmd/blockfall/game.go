package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// Held movement keys repeat after repeatDelay ticks, then every repeatInterval.
const (
	repeatDelay    = 15
	repeatInterval = 4
)

var (
	gridLineColor   = config.MustRGBA(config.GridLineColor)
	backgroundColor = config.MustRGBA(config.BackgroundColor)
	panelColor      = config.MustRGBA(config.PanelColor)
	textColor       = config.MustRGBA(config.TextColor)
	gameOverColor   = config.MustRGBA(config.GameOverColor)
)

// Game implements ebiten.Game on top of a session scheduler.
type Game struct {
	cfg       *config.Config
	scheduler *session.Scheduler
	swatches  map[tetris.Color]color.RGBA
	labels    *labelCache[*ebiten.Image]

	// Set only with -debug.
	backend *debugui_ebiten.ImguiBackend
	imgui   *debugui.ImguiSystem
}

func newGame(cfg *config.Config, scheduler *session.Scheduler, swatches map[tetris.Color]color.RGBA) *Game {
	return &Game{
		cfg:       cfg,
		scheduler: scheduler,
		swatches:  swatches,
		labels:    newImageLabels(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.backend == nil {
		g.step()
		return nil
	}

	g.backend.Frame(g.step)
	return nil
}

func (g *Game) step() {
	if !g.imgui.CapturesKeyboard() {
		g.readKeys()
	}
	g.scheduler.Once(1.0 / float64(ebiten.TPS()))
}

func (g *Game) readKeys() {
	commands := g.scheduler.Commands()

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		commands.Push(session.Confirm)
	}
	if repeating(ebiten.KeyLeft) {
		commands.Push(session.MoveLeft)
	}
	if repeating(ebiten.KeyRight) {
		commands.Push(session.MoveRight)
	}
	if repeating(ebiten.KeyDown) {
		commands.Push(session.SoftDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		commands.Push(session.HardDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		commands.Push(session.Stop)
	}
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s := g.scheduler.Session()
	snap := s.Engine().Snapshot()

	g.drawGrid(screen)
	if s.Phase() == session.Playing {
		g.drawGhost(screen, snap)
	}
	g.drawCells(screen, snap.Cells())
	g.drawPanel(screen, s, snap)
	g.labels.sweep()

	if g.backend != nil {
		g.backend.Overlay(screen)
	}
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	size := float32(g.cfg.CellSize)
	w, h := g.cfg.BoardSize()

	for x := 0; x <= tetris.Cols; x++ {
		fx := float32(x) * size
		vector.StrokeLine(screen, fx, 0, fx, float32(h), 1, gridLineColor, false)
	}
	for y := 0; y <= tetris.Rows; y++ {
		fy := float32(y) * size
		vector.StrokeLine(screen, 0, fy, float32(w), fy, 1, gridLineColor, false)
	}
}

func (g *Game) drawCells(screen *ebiten.Image, cells [tetris.Rows][tetris.Cols]tetris.Color) {
	size := float32(g.cfg.CellSize)
	for y, row := range cells {
		for x, c := range row {
			if c == tetris.Empty {
				continue
			}
			// One pixel inset keeps the grid lines visible between cells.
			vector.DrawFilledRect(screen, float32(x)*size+1, float32(y)*size+1, size-1, size-1, g.swatches[c], false)
		}
	}
}

func (g *Game) drawGhost(screen *ebiten.Image, snap tetris.Snapshot) {
	size := float32(g.cfg.CellSize)
	clr := g.swatches[snap.Piece.Color]
	for cx, cy := range snap.Piece.Shape.Cells() {
		x, y := snap.Piece.X+cx, snap.GhostY+cy
		if !tetris.InBounds(x, y) {
			continue
		}
		vector.StrokeRect(screen, float32(x)*size+2, float32(y)*size+2, size-3, size-3, 2, clr, false)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image, s *session.Session, snap tetris.Snapshot) {
	w, h := g.cfg.BoardSize()
	left := float32(w) + 1
	vector.DrawFilledRect(screen, left, 0, config.PanelWidth-1, float32(h), panelColor, false)

	x := w + 20
	g.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), x, 20, textColor)
	g.drawText(screen, fmt.Sprintf("Lines: %d", snap.Lines), x, 40, textColor)
	if s.Games() > 0 {
		g.drawText(screen, fmt.Sprintf("Game:  %d", s.Games()), x, 60, textColor)
	}

	switch s.Phase() {
	case session.Idle:
		g.drawText(screen, "Press Up to start", x, 100, textColor)
	case session.Over:
		g.drawText(screen, "GAME OVER", x, 100, gameOverColor)
		g.drawText(screen, "Press Up to restart", x, 120, textColor)
	}

	help := []string{
		"Up     rotate",
		"Left   move left",
		"Right  move right",
		"Down   soft drop",
		"Space  hard drop",
		"Enter  stop",
		"Esc    quit",
	}
	for i, line := range help {
		g.drawText(screen, line, x, h-20*(len(help)-i)-10, textColor)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.cfg.WindowSize()
}
