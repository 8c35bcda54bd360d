package tetris

import "iter"

// Shape is a rectangular matrix of occupied cells, indexed [row][column].
type Shape [][]bool

// ShapeFromInts builds a Shape from a 0/1 matrix. Any non-zero value is occupied.
func ShapeFromInts(rows [][]int) Shape {
	shape := make(Shape, len(rows))
	for y, row := range rows {
		shape[y] = make([]bool, len(row))
		for x, v := range row {
			shape[y][x] = v != 0
		}
	}
	return shape
}

// Width returns the column count of the shape.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the row count of the shape.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned 90 degrees clockwise. Row i of the result is
// column i of s read bottom to top. The receiver is not modified.
func (s Shape) Rotate() Shape {
	height := s.Height()
	width := s.Width()

	rotated := make(Shape, width)
	for i := range width {
		rotated[i] = make([]bool, height)
		for j := range height {
			rotated[i][height-1-j] = s[j][i]
		}
	}

	return rotated
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	for i := range s {
		clone[i] = make([]bool, len(s[i]))
		copy(clone[i], s[i])
	}
	return clone
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Cells yields the (x, y) offset of every occupied cell, row by row.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y, row := range s {
			for x, occupied := range row {
				if !occupied {
					continue
				}
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for range s.Cells() {
		n++
	}
	return n
}

func (s Shape) String() string {
	buf := make([]byte, 0, (s.Width()+1)*s.Height())
	for _, row := range s {
		for _, occupied := range row {
			if occupied {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
