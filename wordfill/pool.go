package wordfill

import "maps"

// A LetterPool is the multiset of letters not yet placed on the board.
// It is an immutable value carried alongside each board state, so states
// remain independently comparable and can be shared freely across
// backtracking branches.
type LetterPool struct {
	counts map[rune]int
}

func NewLetterPool(counts map[rune]int) LetterPool {
	clean := map[rune]int{}
	for r, n := range counts {
		if n > 0 {
			clean[r] = n
		}
	}
	return LetterPool{counts: clean}
}

// Take returns a pool with one r removed, and false if none remain.
func (p LetterPool) Take(r rune) (LetterPool, bool) {
	if p.counts[r] == 0 {
		return LetterPool{}, false
	}
	counts := maps.Clone(p.counts)
	if counts[r] == 1 {
		delete(counts, r)
	} else {
		counts[r]--
	}
	return LetterPool{counts: counts}, true
}

// Count returns how many of r remain.
func (p LetterPool) Count(r rune) int {
	return p.counts[r]
}

// Empty reports whether every letter has been placed.
func (p LetterPool) Empty() bool {
	return len(p.counts) == 0
}
