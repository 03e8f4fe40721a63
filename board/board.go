// Package board implements the waffle letter grid. A WaffleBoard is an
// immutable snapshot; swapping letters produces a new board, so boards can
// be used directly as search-state keys.
package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/domino14/wafflesolver/move"
)

var (
	ErrEmptyGrid         = errors.New("expected at least one row")
	ErrRaggedRows        = errors.New("expected all rows to be the same length")
	ErrDimensionMismatch = errors.New("board dimensions do not match")
	ErrOutOfBounds       = errors.New("coordinate is out of bounds")
)

// A WaffleBoard is a rectangular grid of letters. The dimensions are fixed
// at construction. None of its methods mutate it.
type WaffleBoard struct {
	cells [][]rune
}

// Parse reads a board from r, one row per line. Every line must have the
// same length.
func Parse(r io.Reader) (*WaffleBoard, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return FromRows(rows)
}

// FromFile reads a board from the file at path.
func FromFile(path string) (*WaffleBoard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// FromRows builds a board from row strings.
func FromRows(rows []string) (*WaffleBoard, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = []rune(row)
		if len(cells[i]) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrRaggedRows, i, len(cells[i]), width)
		}
	}
	return &WaffleBoard{cells: cells}, nil
}

// Dims returns the number of rows and columns.
func (b *WaffleBoard) Dims() (int, int) {
	return len(b.cells), len(b.cells[0])
}

func (b *WaffleBoard) inBounds(c move.Coord) bool {
	rows, cols := b.Dims()
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// Letter returns the letter at c. The coordinate must be in bounds.
func (b *WaffleBoard) Letter(c move.Coord) rune {
	return b.cells[c.Row][c.Col]
}

// Diff returns, in row-major order, every coordinate at which b and other
// disagree. The boards must have the same dimensions.
func (b *WaffleBoard) Diff(other *WaffleBoard) ([]move.Coord, error) {
	brows, bcols := b.Dims()
	orows, ocols := other.Dims()
	if brows != orows || bcols != ocols {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, brows, bcols, orows, ocols)
	}
	var diffs []move.Coord
	for row := 0; row < brows; row++ {
		for col := 0; col < bcols; col++ {
			if b.cells[row][col] != other.cells[row][col] {
				diffs = append(diffs, move.Coord{Row: row, Col: col})
			}
		}
	}
	return diffs, nil
}

// Distance is the number of cells at which b and other disagree. Zero
// means the boards are equal.
func (b *WaffleBoard) Distance(other *WaffleBoard) (int, error) {
	diffs, err := b.Diff(other)
	if err != nil {
		return 0, err
	}
	return len(diffs), nil
}

// Apply returns a new board with the letters at sw.A and sw.B exchanged.
func (b *WaffleBoard) Apply(sw move.Swap) (*WaffleBoard, error) {
	if !b.inBounds(sw.A) || !b.inBounds(sw.B) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, sw)
	}
	cells := make([][]rune, len(b.cells))
	for i, row := range b.cells {
		cells[i] = append([]rune(nil), row...)
	}
	cells[sw.A.Row][sw.A.Col], cells[sw.B.Row][sw.B.Col] =
		cells[sw.B.Row][sw.B.Col], cells[sw.A.Row][sw.A.Col]
	return &WaffleBoard{cells: cells}, nil
}

// Equals compares two boards cell by cell.
func (b *WaffleBoard) Equals(other *WaffleBoard) bool {
	return b.Key() == other.Key()
}

// Key returns a content key suitable for deduplication maps. Two boards
// have the same key iff they have the same cells.
func (b *WaffleBoard) Key() string {
	return b.String()
}

// LetterCounts returns the multiset of letters on the board. Two boards
// are reachable from each other by swaps iff their multisets are equal.
func (b *WaffleBoard) LetterCounts() map[rune]int {
	counts := make(map[rune]int)
	for _, row := range b.cells {
		for _, cell := range row {
			counts[cell]++
		}
	}
	return counts
}

func (b *WaffleBoard) String() string {
	rows := make([]string, len(b.cells))
	for i, row := range b.cells {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}
