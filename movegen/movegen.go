// Package movegen generates the candidate swaps worth exploring between a
// board and its target. Only pairs of currently-mismatched cells are
// proposed: a swap touching an already-correct cell can never reduce the
// number of mismatches, so nothing is lost by skipping those pairs, and
// the branching factor drops from all cell pairs to pairs of mismatches.
package movegen

import (
	"errors"
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/wafflesolver/board"
	"github.com/domino14/wafflesolver/move"
)

// ErrLoneMismatch indicates a board pair with exactly one differing cell.
// A single wrong cell cannot be fixed by exchanging letters, so the pair
// is not reachable by swaps at all; callers should treat the state as a
// dead end and surface the condition rather than silently proposing
// nothing.
var ErrLoneMismatch = errors.New("exactly one differing cell; boards are not reachable by swaps")

// Moves proposes every unordered pair of distinct mismatched coordinates
// as a candidate swap, deduplicated and sorted so that downstream
// tie-breaking is deterministic. An equal board pair yields no moves.
func Moves(cur, target *board.WaffleBoard) ([]move.Swap, error) {
	diffs, err := cur.Diff(target)
	if err != nil {
		return nil, err
	}
	if len(diffs) == 0 {
		return nil, nil
	}
	if len(diffs) == 1 {
		return nil, ErrLoneMismatch
	}
	swaps := make([]move.Swap, 0, len(diffs)*(len(diffs)-1)/2)
	for i := 0; i < len(diffs); i++ {
		for j := i + 1; j < len(diffs); j++ {
			swaps = append(swaps, move.NewSwap(diffs[i], diffs[j]))
		}
	}
	// NewSwap canonicalizes, so duplicates are structural equals.
	swaps = lo.Uniq(swaps)
	sort.Slice(swaps, func(i, j int) bool {
		return swaps[i].Less(swaps[j])
	})
	return swaps, nil
}
