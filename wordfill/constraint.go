// Package wordfill fills the open words of a waffle board with entries
// from a wordlist, subject to the letters still available on the board.
package wordfill

import "maps"

// A Constraint is a sparse pattern over the positions of a single word:
// positions present in the map must hold exactly that letter, absent
// positions are open. Constraints are immutable; With returns a copy.
type Constraint struct {
	letters map[int]rune
}

func NewConstraint() Constraint {
	return Constraint{letters: map[int]rune{}}
}

// ConstraintFromPattern builds a constraint from a pattern string where
// '?' marks an open position.
func ConstraintFromPattern(pattern string) Constraint {
	letters := map[int]rune{}
	for i, r := range []rune(pattern) {
		if r == '?' {
			continue
		}
		letters[i] = r
	}
	return Constraint{letters: letters}
}

// With returns a new constraint that additionally pins position idx to r.
func (c Constraint) With(idx int, r rune) Constraint {
	letters := maps.Clone(c.letters)
	letters[idx] = r
	return Constraint{letters: letters}
}

// At returns the letter pinned at idx, if any.
func (c Constraint) At(idx int) (rune, bool) {
	r, ok := c.letters[idx]
	return r, ok
}

// Matches reports whether word satisfies every pinned position.
func (c Constraint) Matches(word string) bool {
	for i, r := range []rune(word) {
		if want, ok := c.letters[i]; ok && want != r {
			return false
		}
	}
	return true
}

// NumSet returns how many positions are pinned.
func (c Constraint) NumSet() int {
	return len(c.letters)
}
