package wordfill

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/domino14/wafflesolver/move"
)

var (
	ErrEmptyGrid  = errors.New("expected at least one row")
	ErrRaggedRows = errors.New("expected all rows to be the same length")
	ErrNotSquare  = errors.New("waffle grids are square")
)

// wordIndex maps a grid row or column to its word slot. Words run along
// even rows and even columns; odd/odd cells are blocks.
func wordIndex(cell int) (int, bool) {
	if cell%2 == 0 {
		return cell / 2, true
	}
	return 0, false
}

// A WordSlot is one incomplete word on the board: its accumulated
// constraint and the grid cells it occupies, in reading order.
type WordSlot struct {
	Constraint Constraint
	Cells      []move.Coord
}

// A ConstraintBoard tracks the partially-filled waffle: one constraint
// per word slot plus the pool of letters still available. It is an
// immutable value; With returns a new board.
type ConstraintBoard struct {
	rows []Constraint
	cols []Constraint
	pool LetterPool
	side int
}

// ParseBoard reads a waffle grid. Uppercase letters are already placed;
// lowercase letters only contribute to the pool of available letters.
func ParseBoard(r io.Reader) (ConstraintBoard, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return ConstraintBoard{}, err
	}
	if len(lines) == 0 {
		return ConstraintBoard{}, ErrEmptyGrid
	}
	side := len([]rune(lines[0]))
	if side == 0 {
		return ConstraintBoard{}, ErrEmptyGrid
	}
	for i, line := range lines {
		if len([]rune(line)) != side {
			return ConstraintBoard{}, fmt.Errorf("%w: row %d", ErrRaggedRows, i)
		}
	}
	if len(lines) != side {
		return ConstraintBoard{}, fmt.Errorf("%w: got %dx%d", ErrNotSquare, len(lines), side)
	}

	counts := map[rune]int{}
	for _, line := range lines {
		for _, cell := range line {
			if unicode.IsLetter(cell) || unicode.IsDigit(cell) {
				counts[unicode.ToLower(cell)]++
			}
		}
	}

	nwords := side/2 + 1
	cb := ConstraintBoard{
		rows: make([]Constraint, nwords),
		cols: make([]Constraint, nwords),
		pool: NewLetterPool(counts),
		side: side,
	}
	for i := range cb.rows {
		cb.rows[i] = NewConstraint()
		cb.cols[i] = NewConstraint()
	}

	for row, line := range lines {
		for col, cell := range []rune(line) {
			if !unicode.IsUpper(cell) {
				continue
			}
			next, ok := cb.With(row, col, unicode.ToLower(cell))
			if !ok {
				return ConstraintBoard{}, fmt.Errorf(
					"cannot place %q at (%d,%d): invalid board", cell, row, col)
			}
			cb = next
		}
	}
	return cb, nil
}

// BoardFromFile reads a waffle grid from the file at path.
func BoardFromFile(path string) (ConstraintBoard, error) {
	f, err := os.Open(path)
	if err != nil {
		return ConstraintBoard{}, err
	}
	defer f.Close()
	cb, err := ParseBoard(f)
	if err != nil {
		return ConstraintBoard{}, fmt.Errorf("%s: %w", path, err)
	}
	return cb, nil
}

// Side returns the grid side length.
func (cb ConstraintBoard) Side() int {
	return cb.side
}

// Pool returns the letters still available for placement.
func (cb ConstraintBoard) Pool() LetterPool {
	return cb.pool
}

// At returns the letter placed at (row, col), if any. Block cells are
// never set.
func (cb ConstraintBoard) At(row, col int) (rune, bool) {
	if idx, ok := wordIndex(row); ok {
		return cb.rows[idx].At(col)
	}
	if idx, ok := wordIndex(col); ok {
		return cb.cols[idx].At(row)
	}
	return 0, false
}

// With places r at (row, col), consuming it from the pool, and returns
// the new board. Placing onto a cell already holding r is a no-op.
// Returns false if the cell holds a different letter, the pool has no r
// left, or the cell is a block.
func (cb ConstraintBoard) With(row, col int, r rune) (ConstraintBoard, bool) {
	if cur, ok := cb.At(row, col); ok {
		if cur == r {
			return cb, true
		}
		return ConstraintBoard{}, false
	}
	rowIdx, onRow := wordIndex(row)
	colIdx, onCol := wordIndex(col)
	if !onRow && !onCol {
		return ConstraintBoard{}, false
	}
	pool, ok := cb.pool.Take(r)
	if !ok {
		return ConstraintBoard{}, false
	}

	next := ConstraintBoard{
		rows: append([]Constraint(nil), cb.rows...),
		cols: append([]Constraint(nil), cb.cols...),
		pool: pool,
		side: cb.side,
	}
	// A cell on both a row word and a column word is pinned in both
	// constraints so they stay in sync.
	if onRow {
		next.rows[rowIdx] = next.rows[rowIdx].With(col, r)
	}
	if onCol {
		next.cols[colIdx] = next.cols[colIdx].With(row, r)
	}
	return next, true
}

// WithWord places word along cells, one letter at a time, left to right.
// Returns false as soon as any placement fails.
func (cb ConstraintBoard) WithWord(word string, cells []move.Coord) (ConstraintBoard, bool) {
	runes := []rune(word)
	if len(runes) != len(cells) {
		return ConstraintBoard{}, false
	}
	cur := cb
	for i := 0; i < len(runes); i++ {
		next, ok := cur.With(cells[i].Row, cells[i].Col, runes[i])
		if !ok {
			return ConstraintBoard{}, false
		}
		cur = next
	}
	return cur, true
}

// OpenWords returns the word slots that still have open cells, rows
// first, then columns, in grid order.
func (cb ConstraintBoard) OpenWords() []WordSlot {
	var slots []WordSlot
	for i, constraint := range cb.rows {
		if constraint.NumSet() == cb.side {
			continue
		}
		cells := make([]move.Coord, cb.side)
		for col := range cells {
			cells[col] = move.Coord{Row: i * 2, Col: col}
		}
		slots = append(slots, WordSlot{Constraint: constraint, Cells: cells})
	}
	for i, constraint := range cb.cols {
		if constraint.NumSet() == cb.side {
			continue
		}
		cells := make([]move.Coord, cb.side)
		for row := range cells {
			cells[row] = move.Coord{Row: row, Col: i * 2}
		}
		slots = append(slots, WordSlot{Constraint: constraint, Cells: cells})
	}
	return slots
}

func (cb ConstraintBoard) String() string {
	lines := make([]string, cb.side)
	for row := 0; row < cb.side; row++ {
		cells := make([]rune, cb.side)
		for col := 0; col < cb.side; col++ {
			if r, ok := cb.At(row, col); ok {
				cells[col] = r
			} else {
				cells[col] = ' '
			}
		}
		lines[row] = string(cells)
	}
	return strings.Join(lines, "\n")
}
