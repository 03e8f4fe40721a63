// Package playback replays a swap path step by step for display. It
// prints the starting board, then each swap together with the board that
// results from it, ending on the fully transformed board.
package playback

import (
	"fmt"
	"io"

	"github.com/domino14/wafflesolver/board"
	"github.com/domino14/wafflesolver/move"
)

type Player struct {
	w io.Writer
}

func NewPlayer(w io.Writer) *Player {
	return &Player{w: w}
}

// Play writes the transformation described by path, applied in order to
// start. A path produced by the swap finder always applies cleanly; a
// hand-crafted one may fail with an out-of-bounds error.
func (p *Player) Play(start *board.WaffleBoard, path []move.Swap) error {
	cur := start
	if _, err := fmt.Fprintln(p.w, cur); err != nil {
		return err
	}
	for _, sw := range path {
		next, err := cur.Apply(sw)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.w, "- swap '%c' at %v with '%c' at %v\n",
			cur.Letter(sw.A), sw.A, cur.Letter(sw.B), sw.B)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(p.w, next); err != nil {
			return err
		}
		cur = next
	}
	return nil
}
