package tetris

// Board dimensions. They never change for the lifetime of a board.
const (
	Cols = 10
	Rows = 20
)

// Color is an opaque color token taken from the palette. Empty marks a free cell.
type Color string

const Empty Color = ""

// Board is the grid of locked cells, indexed [row][column].
type Board struct {
	cells [Rows][Cols]Color
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// At returns the color at column x, row y.
func (b *Board) At(x, y int) Color {
	return b.cells[y][x]
}

// Occupied reports whether the cell at (x, y) holds a locked color.
func (b *Board) Occupied(x, y int) bool {
	return b.cells[y][x] != Empty
}

// Set writes c into the cell at (x, y).
func (b *Board) Set(x, y int, c Color) {
	b.cells[y][x] = c
}

// Row returns a copy of row y.
func (b *Board) Row(y int) [Cols]Color {
	return b.cells[y]
}

// FillRow writes c into every cell of row y.
func (b *Board) FillRow(y int, c Color) {
	for x := range Cols {
		b.cells[y][x] = c
	}
}

// RowFull reports whether row y has no empty cell.
func (b *Board) RowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// Filled returns the number of occupied cells on the board.
func (b *Board) Filled() int {
	n := 0
	for y := range Rows {
		for x := range Cols {
			if b.cells[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// Cells returns a copy of the whole grid.
func (b *Board) Cells() [Rows][Cols]Color {
	return b.cells
}

// removeFullRows drops every full row, shifts the remaining rows down keeping
// their order, and fills the top with empty rows. It returns the number removed.
func (b *Board) removeFullRows() int {
	var kept [Rows][Cols]Color
	dst := Rows - 1
	for y := Rows - 1; y >= 0; y-- {
		if b.RowFull(y) {
			continue
		}
		kept[dst] = b.cells[y]
		dst--
	}

	b.cells = kept
	return dst + 1
}
