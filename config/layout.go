package config

import "github.com/plus3/blockfall/tetris"

// Layout constants shared by the frontends. They are presentation values, not
// engine invariants.
const (
	Cols = tetris.Cols
	Rows = tetris.Rows

	// PanelWidth is the width in pixels of the score panel right of the board.
	PanelWidth = 300

	// Color tokens for the board chrome, resolved with RGBA.
	GridLineColor   = "wheat"
	BackgroundColor = "oldlace"
	PanelColor      = "blanchedalmond"
	TextColor       = "#a36940"
	GameOverColor   = "red"
)

// BoardSize returns the board dimensions in pixels.
func (c *Config) BoardSize() (width, height int) {
	return tetris.Cols * c.CellSize, tetris.Rows * c.CellSize
}

// WindowSize returns the window dimensions in pixels: the board plus the panel.
func (c *Config) WindowSize() (width, height int) {
	w, h := c.BoardSize()
	return w + PanelWidth, h
}
