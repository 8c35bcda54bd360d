package tetris_test

import "github.com/plus3/blockfall/tetris"

const (
	shapeO = iota
	shapeI
	shapeT
	shapeL
)

var (
	oShape = tetris.ShapeFromInts([][]int{{1, 1}, {1, 1}})
	iShape = tetris.ShapeFromInts([][]int{{1, 1, 1, 1}})
	tShape = tetris.ShapeFromInts([][]int{{0, 1, 0}, {1, 1, 1}})
	lShape = tetris.ShapeFromInts([][]int{{1, 0}, {1, 0}, {1, 1}})
)

func testPalette() *tetris.Palette {
	return &tetris.Palette{
		Colors: []tetris.Color{"red", "green", "blue"},
		Shapes: []tetris.Shape{oShape, iShape, tShape, lShape},
	}
}

// newEngine returns an engine whose spawns follow the given (shape, color)
// index pairs, cycling back to the first pair when exhausted.
func newEngine(pairs ...int) *tetris.Engine {
	return tetris.NewEngine(testPalette(), tetris.NewSequence(pairs...))
}
