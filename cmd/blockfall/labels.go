package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// labelCache keeps rendered panel text between frames. Entries not requested
// since the previous sweep are released by the next one, so changing text such
// as the score does not accumulate.
type labelCache[T any] struct {
	render  func(string) T
	release func(T)
	entries map[string]*cachedLabel[T]
}

type cachedLabel[T any] struct {
	value T
	used  bool
}

func newLabelCache[T any](render func(string) T, release func(T)) *labelCache[T] {
	return &labelCache[T]{
		render:  render,
		release: release,
		entries: make(map[string]*cachedLabel[T]),
	}
}

func (c *labelCache[T]) get(s string) T {
	entry, ok := c.entries[s]
	if !ok {
		entry = &cachedLabel[T]{value: c.render(s)}
		c.entries[s] = entry
	}
	entry.used = true
	return entry.value
}

func (c *labelCache[T]) sweep() {
	for s, entry := range c.entries {
		if !entry.used {
			c.release(entry.value)
			delete(c.entries, s)
			continue
		}
		entry.used = false
	}
}

// renderLabel draws s in the white debug font onto an image sized to fit it.
func renderLabel(s string) *ebiten.Image {
	img := ebiten.NewImage(len(s)*6+2, 16)
	ebitenutil.DebugPrint(img, s)
	return img
}

func newImageLabels() *labelCache[*ebiten.Image] {
	return newLabelCache(renderLabel, (*ebiten.Image).Deallocate)
}

// drawText draws a cached label tinted with clr.
func (g *Game) drawText(screen *ebiten.Image, s string, x, y int, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(g.labels.get(s), op)
}
