// Package move defines the coordinate and swap types shared by the board,
// move generator, and swap finder.
package move

import "fmt"

// A Coord addresses a single cell on a waffle board. Coordinates order
// lexicographically by (row, col); that ordering drives all of the
// deterministic tie-breaking downstream.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less returns true if c orders before o.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// A Swap is an unordered pair of coordinates whose letters are to be
// exchanged. Always construct with NewSwap; it stores the pair as
// (min, max) so that a swap of X with Y and a swap of Y with X are the
// same value, comparable and usable as a map key.
type Swap struct {
	A Coord
	B Coord
}

func NewSwap(a, b Coord) Swap {
	if b.Less(a) {
		a, b = b, a
	}
	return Swap{A: a, B: b}
}

// Less orders swaps by their canonical coordinate pairs.
func (s Swap) Less(o Swap) bool {
	if s.A != o.A {
		return s.A.Less(o.A)
	}
	return s.B.Less(o.B)
}

// String provides a string just for debugging purposes.
func (s Swap) String() string {
	return fmt.Sprintf("<swap %v %v>", s.A, s.B)
}
