package swapfinder

import "github.com/domino14/wafflesolver/board"

// A frontierItem is one enqueued search state. dist and pathLen are
// snapshots taken at push time; the authoritative path for a board lives
// in the finder's dedup map and is re-read at pop time, so a stale item
// for a board that has since been reached more cheaply is harmless.
type frontierItem struct {
	board   *board.WaffleBoard
	dist    int
	pathLen int
	// seq breaks remaining ties by insertion order. Moves are generated
	// in sorted order, so this realizes the smallest-swap-first rule.
	seq int
}

type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	if f[i].pathLen != f[j].pathLen {
		return f[i].pathLen < f[j].pathLen
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
}

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
