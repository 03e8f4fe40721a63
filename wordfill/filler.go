package wordfill

import (
	"bufio"
	"context"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/wafflesolver/config"
)

// A Filler searches for complete fillings of a waffle board. Board states
// are immutable, so branches share nothing and the top-level candidates
// can be explored in parallel.
type Filler struct {
	threads int
}

func (f *Filler) Init(cfg *config.Config) {
	f.threads = cfg.Threads
	if f.threads <= 0 {
		f.threads = runtime.NumCPU()
	}
}

// FindAll returns every complete filling of cb using words from wordlist,
// rendered as grid strings, sorted for deterministic output.
func (f *Filler) FindAll(ctx context.Context, cb ConstraintBoard, wordlist []string) ([]string, error) {
	slots := cb.OpenWords()
	if len(slots) == 0 {
		return []string{cb.String()}, nil
	}

	slot := slots[0]
	candidates := candidateWords(slot, wordlist)
	log.Debug().Int("candidates", len(candidates)).
		Int("open-words", len(slots)).
		Msg("starting fill")

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.threads)
	var mu sync.Mutex
	var solutions []string

	for _, word := range candidates {
		word := word
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			next, ok := cb.WithWord(word, slot.Cells)
			if !ok {
				return nil
			}
			found := fillRest(next, wordlist)
			if len(found) == 0 {
				return nil
			}
			mu.Lock()
			solutions = append(solutions, found...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(solutions)
	return solutions, nil
}

// fillRest continues the fill sequentially below the parallel top level.
func fillRest(cb ConstraintBoard, wordlist []string) []string {
	slots := cb.OpenWords()
	if len(slots) == 0 {
		return []string{cb.String()}
	}
	slot := slots[0]
	var solutions []string
	for _, word := range candidateWords(slot, wordlist) {
		next, ok := cb.WithWord(word, slot.Cells)
		if !ok {
			continue
		}
		solutions = append(solutions, fillRest(next, wordlist)...)
	}
	return solutions
}

func candidateWords(slot WordSlot, wordlist []string) []string {
	return lo.Filter(wordlist, func(word string, _ int) bool {
		return len([]rune(word)) == len(slot.Cells) && slot.Constraint.Matches(word)
	})
}

// LoadWordlist reads one word per line, trimming surrounding whitespace.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
