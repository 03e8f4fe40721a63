package move

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSwapCanonicalizes(t *testing.T) {
	a := Coord{Row: 1, Col: 3}
	b := Coord{Row: 0, Col: 4}
	assert.Equal(t, NewSwap(a, b), NewSwap(b, a))
	assert.Equal(t, Coord{Row: 0, Col: 4}, NewSwap(a, b).A)
}

func TestSwapsAsMapKeys(t *testing.T) {
	seen := map[Swap]bool{}
	seen[NewSwap(Coord{0, 0}, Coord{2, 2})] = true
	seen[NewSwap(Coord{2, 2}, Coord{0, 0})] = true
	assert.Len(t, seen, 1)
}

func TestCoordOrdering(t *testing.T) {
	type ordertest struct {
		a, b Coord
		less bool
	}
	testCases := []ordertest{
		{Coord{0, 0}, Coord{0, 1}, true},
		{Coord{0, 5}, Coord{1, 0}, true},
		{Coord{1, 0}, Coord{0, 5}, false},
		{Coord{2, 2}, Coord{2, 2}, false},
	}
	for _, tc := range testCases {
		if got := tc.a.Less(tc.b); got != tc.less {
			t.Errorf("%v.Less(%v): expected %v, got %v", tc.a, tc.b, tc.less, got)
		}
	}
}

func TestSwapOrdering(t *testing.T) {
	s1 := NewSwap(Coord{0, 0}, Coord{0, 1})
	s2 := NewSwap(Coord{0, 0}, Coord{1, 0})
	s3 := NewSwap(Coord{0, 1}, Coord{1, 1})
	assert.True(t, s1.Less(s2))
	assert.True(t, s2.Less(s3))
	assert.False(t, s1.Less(s1))
}

func TestCoordString(t *testing.T) {
	assert.Equal(t, "(3,7)", Coord{Row: 3, Col: 7}.String())
}
