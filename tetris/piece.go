package tetris

// Spawn coordinates of every new piece.
const (
	SpawnX = 3
	SpawnY = 0
)

// Palette is the static set of shapes and colors pieces are drawn from.
// It is loaded once at startup and never mutated afterwards.
type Palette struct {
	Colors []Color
	Shapes []Shape
}

// Piece is the falling tetromino. X and Y are the board offset of the
// shape's top-left corner.
type Piece struct {
	Shape Shape
	X, Y  int
	Color Color
}

// NewPiece picks a shape and then a color uniformly from the palette and places
// the piece at the spawn position. The palette must have at least one of each.
func NewPiece(palette *Palette, rng Source) *Piece {
	shape := palette.Shapes[rng.IntN(len(palette.Shapes))]
	color := palette.Colors[rng.IntN(len(palette.Colors))]

	return &Piece{
		Shape: shape.Clone(),
		X:     SpawnX,
		Y:     SpawnY,
		Color: color,
	}
}

// Rotate returns the piece's shape turned clockwise without changing the piece.
func (p *Piece) Rotate() Shape {
	return p.Shape.Rotate()
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() Piece {
	return Piece{
		Shape: p.Shape.Clone(),
		X:     p.X,
		Y:     p.Y,
		Color: p.Color,
	}
}
