package tui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

const (
	// cellWidth is the number of terminal columns per board cell, which keeps
	// cells roughly square in most fonts.
	cellWidth = 2

	boardLeft = 1
	boardTop  = 1
	panelLeft = boardLeft + tetris.Cols*cellWidth + 3
)

// Renderer draws a session onto a tcell screen.
type Renderer struct {
	screen   tcell.Screen
	swatches map[tetris.Color]tcell.Color

	border tcell.Style
	text   tcell.Style
	alert  tcell.Style
}

func NewRenderer(screen tcell.Screen, palette *tetris.Palette) (*Renderer, error) {
	swatches, err := config.Swatches(palette)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		screen:   screen,
		swatches: make(map[tetris.Color]tcell.Color, len(swatches)),
		border:   tcell.StyleDefault.Foreground(rgb(config.MustRGBA(config.GridLineColor))),
		text:     tcell.StyleDefault.Foreground(rgb(config.MustRGBA(config.TextColor))),
		alert:    tcell.StyleDefault.Foreground(rgb(config.MustRGBA(config.GameOverColor))).Bold(true),
	}
	for token, c := range swatches {
		r.swatches[token] = rgb(c)
	}
	return r, nil
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw renders the current state of s and shows it.
func (r *Renderer) Draw(s *session.Session) {
	r.screen.Clear()

	snap := s.Engine().Snapshot()
	r.drawBorder()
	if s.Phase() == session.Playing {
		r.drawGhost(snap)
	}
	r.drawCells(snap.Cells())
	r.drawPanel(s, snap)

	r.screen.Show()
}

func (r *Renderer) drawBorder() {
	right := boardLeft + tetris.Cols*cellWidth
	bottom := boardTop + tetris.Rows

	for x := boardLeft; x < right; x++ {
		r.screen.SetContent(x, boardTop-1, '-', nil, r.border)
		r.screen.SetContent(x, bottom, '-', nil, r.border)
	}
	for y := boardTop; y < bottom; y++ {
		r.screen.SetContent(boardLeft-1, y, '|', nil, r.border)
		r.screen.SetContent(right, y, '|', nil, r.border)
	}
	for _, corner := range [][2]int{{boardLeft - 1, boardTop - 1}, {right, boardTop - 1}, {boardLeft - 1, bottom}, {right, bottom}} {
		r.screen.SetContent(corner[0], corner[1], '+', nil, r.border)
	}
}

func (r *Renderer) drawGhost(snap tetris.Snapshot) {
	style := tcell.StyleDefault.Foreground(r.swatches[snap.Piece.Color])
	for cx, cy := range snap.Piece.Shape.Cells() {
		x, y := snap.Piece.X+cx, snap.GhostY+cy
		if !tetris.InBounds(x, y) {
			continue
		}
		sx, sy := cellOrigin(x, y)
		r.screen.SetContent(sx, sy, '[', nil, style)
		r.screen.SetContent(sx+1, sy, ']', nil, style)
	}
}

func (r *Renderer) drawCells(cells [tetris.Rows][tetris.Cols]tetris.Color) {
	for y, row := range cells {
		for x, c := range row {
			if c == tetris.Empty {
				continue
			}
			style := tcell.StyleDefault.Background(r.swatches[c])
			sx, sy := cellOrigin(x, y)
			for i := range cellWidth {
				r.screen.SetContent(sx+i, sy, ' ', nil, style)
			}
		}
	}
}

func (r *Renderer) drawPanel(s *session.Session, snap tetris.Snapshot) {
	y := boardTop
	r.label(y, fmt.Sprintf("Score: %d", snap.Score), r.text)
	r.label(y+1, fmt.Sprintf("Lines: %d", snap.Lines), r.text)
	if s.Games() > 0 {
		r.label(y+2, fmt.Sprintf("Game:  %d", s.Games()), r.text)
	}

	switch s.Phase() {
	case session.Idle:
		r.label(y+4, "Press Up to start", r.text)
	case session.Over:
		r.label(y+4, "GAME OVER", r.alert)
		r.label(y+5, "Press Up to restart", r.text)
	}

	help := []string{
		"Up     rotate",
		"Left   move left",
		"Right  move right",
		"Down   soft drop",
		"Space  hard drop",
		"Enter  stop",
		"q/Esc  quit",
	}
	for i, line := range help {
		r.label(y+8+i, line, r.text)
	}
}

func (r *Renderer) label(y int, s string, style tcell.Style) {
	x := panelLeft
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// cellOrigin maps a board cell to the screen position of its left column.
func cellOrigin(x, y int) (int, int) {
	return boardLeft + x*cellWidth, boardTop + y
}
