package movegen

import (
	"sort"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wafflesolver/board"
	"github.com/domino14/wafflesolver/move"
)

func mustBoard(t *testing.T, rows ...string) *board.WaffleBoard {
	t.Helper()
	b, err := board.FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestMovesEqualBoards(t *testing.T) {
	is := is.New(t)
	b := mustBoard(t, "ab", "cd")
	swaps, err := Moves(b, b)
	is.NoErr(err)
	is.Equal(len(swaps), 0)
}

func TestMovesLoneMismatch(t *testing.T) {
	cur := mustBoard(t, "ab", "cd")
	target := mustBoard(t, "xb", "cd")
	_, err := Moves(cur, target)
	assert.ErrorIs(t, err, ErrLoneMismatch)
}

func TestMovesAllMismatchedPairs(t *testing.T) {
	is := is.New(t)
	cur := mustBoard(t, "ab", "cd")
	target := mustBoard(t, "ba", "dc")
	swaps, err := Moves(cur, target)
	is.NoErr(err)
	// four mismatches yield C(4,2) = 6 candidate swaps
	is.Equal(len(swaps), 6)
	is.True(sort.SliceIsSorted(swaps, func(i, j int) bool {
		return swaps[i].Less(swaps[j])
	}))
}

func TestMovesDeterministic(t *testing.T) {
	cur := mustBoard(t, "abc", "def")
	target := mustBoard(t, "cba", "fed")
	first, err := Moves(cur, target)
	assert.NoError(t, err)
	second, err := Moves(cur, target)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMovesOnlyTouchMismatches(t *testing.T) {
	is := is.New(t)
	cur := mustBoard(t, "ab", "cd")
	target := mustBoard(t, "ba", "cd")
	swaps, err := Moves(cur, target)
	is.NoErr(err)
	is.Equal(swaps, []move.Swap{
		move.NewSwap(move.Coord{Row: 0, Col: 0}, move.Coord{Row: 0, Col: 1}),
	})
}

func TestMovesDimensionMismatch(t *testing.T) {
	cur := mustBoard(t, "ab")
	target := mustBoard(t, "ab", "cd")
	_, err := Moves(cur, target)
	assert.ErrorIs(t, err, board.ErrDimensionMismatch)
}
