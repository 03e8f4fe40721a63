// Package swapfinder finds a shortest sequence of letter swaps that
// transforms one waffle board into another. It runs a best-first search
// over board states, ordered by how far each state still is from the
// target, with full deduplication of visited boards. Every accepted swap
// must strictly reduce the number of mismatched cells, which bounds the
// search depth by the initial mismatch count and guarantees termination.
package swapfinder

import (
	"container/heap"
	"errors"
	"maps"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wafflesolver/board"
	"github.com/domino14/wafflesolver/config"
	"github.com/domino14/wafflesolver/move"
	"github.com/domino14/wafflesolver/movegen"
)

// ErrNoPath means no swap sequence can turn the start board into the
// target. This is a negative answer to a well-posed question, not a
// failure; callers should report it and carry on.
var ErrNoPath = errors.New("no swap path found")

// A SwapFinder runs one search at a time. It is not safe for concurrent
// use; the dedup map and frontier belong to the running call alone.
type SwapFinder struct {
	maxSwaps int

	nodesExpanded int
	statesSeen    int
}

func (s *SwapFinder) Init(cfg *config.Config) {
	s.maxSwaps = cfg.MaxSwaps
	if s.maxSwaps <= 0 {
		s.maxSwaps = config.DefaultMaxSwaps
	}
}

// Find returns a shortest path of swaps from start to target, or ErrNoPath
// if none exists. Repeated calls on the same inputs return the identical
// sequence. An empty (non-nil) path means the boards are already equal.
func (s *SwapFinder) Find(start, target *board.WaffleBoard) ([]move.Swap, error) {
	startDist, err := start.Distance(target)
	if err != nil {
		return nil, err
	}
	if startDist == 0 {
		return []move.Swap{}, nil
	}
	// Swaps permute letters, so the letter multiset is invariant. If the
	// multisets differ the target is unreachable; detect it here instead
	// of exhausting the frontier to say the same thing.
	if !maps.Equal(start.LetterCounts(), target.LetterCounts()) {
		log.Debug().Msg("letter multisets differ; target unreachable by swaps")
		return nil, ErrNoPath
	}

	s.nodesExpanded = 0
	s.statesSeen = 1

	best := map[string][]move.Swap{start.Key(): {}}
	fr := &frontier{}
	heap.Init(fr)
	seq := 0
	heap.Push(fr, &frontierItem{board: start, dist: startDist, pathLen: 0, seq: seq})

	for fr.Len() > 0 {
		cur := heap.Pop(fr).(*frontierItem)
		// Re-read the best known path; a stale frontier entry may have
		// been superseded by a cheaper route to the same board.
		path := best[cur.board.Key()]
		if len(path) > s.maxSwaps {
			// Circuit breaker only. A well-posed pair finishes long
			// before this; see the multiset check above for the
			// genuinely unreachable ones.
			continue
		}
		if cur.dist == 0 {
			log.Debug().Int("nodes-expanded", s.nodesExpanded).
				Int("states-seen", s.statesSeen).
				Int("path-length", len(path)).
				Msg("found shortest swap path")
			return path, nil
		}
		s.nodesExpanded++

		swaps, err := movegen.Moves(cur.board, target)
		if err != nil {
			if errors.Is(err, movegen.ErrLoneMismatch) {
				// Cannot happen when the multisets match, but a lone
				// mismatch is worth hearing about if it ever does.
				log.Warn().Str("board", cur.board.Key()).
					Msg("lone mismatched cell; abandoning branch")
				continue
			}
			return nil, err
		}
		for _, sw := range swaps {
			next, err := cur.board.Apply(sw)
			if err != nil {
				return nil, err
			}
			nextDist, err := next.Distance(target)
			if err != nil {
				return nil, err
			}
			// Non-improving swaps are never explored. Each accepted step
			// removes at least one mismatch, so no path is longer than
			// the starting distance.
			if nextDist >= cur.dist {
				continue
			}
			key := next.Key()
			if prev, ok := best[key]; ok && len(prev) <= len(path)+1 {
				continue
			}
			nextPath := make([]move.Swap, 0, len(path)+1)
			nextPath = append(nextPath, path...)
			nextPath = append(nextPath, sw)
			best[key] = nextPath
			seq++
			s.statesSeen++
			heap.Push(fr, &frontierItem{
				board:   next,
				dist:    nextDist,
				pathLen: len(nextPath),
				seq:     seq,
			})
		}
	}

	log.Debug().Int("nodes-expanded", s.nodesExpanded).
		Int("states-seen", s.statesSeen).
		Msg("frontier exhausted without reaching target")
	return nil, ErrNoPath
}

// NodesExpanded returns how many boards the last Find call expanded.
func (s *SwapFinder) NodesExpanded() int {
	return s.nodesExpanded
}

// StatesSeen returns how many distinct boards the last Find call reached.
func (s *SwapFinder) StatesSeen() int {
	return s.statesSeen
}
