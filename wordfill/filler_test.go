package wordfill

import (
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wafflesolver/config"
)

var testWordlist = []string{"ten", "tie", "nye", "eye", "toe", "tan"}

func newFiller(threads int) *Filler {
	filler := &Filler{}
	filler.Init(&config.Config{Threads: threads})
	return filler
}

func TestFindAll(t *testing.T) {
	is := is.New(t)
	cb, err := ParseBoard(strings.NewReader(scrambled))
	is.NoErr(err)

	solutions, err := newFiller(2).FindAll(context.Background(), cb, testWordlist)
	is.NoErr(err)
	is.Equal(solutions, []string{
		"ten\ni y\neye",
		"tie\ne y\nnye",
	})
}

func TestFindAllDeterministic(t *testing.T) {
	cb, err := ParseBoard(strings.NewReader(scrambled))
	require.NoError(t, err)
	first, err := newFiller(4).FindAll(context.Background(), cb, testWordlist)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := newFiller(1).FindAll(context.Background(), cb, testWordlist)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFindAllNoSolutions(t *testing.T) {
	is := is.New(t)
	cb, err := ParseBoard(strings.NewReader(scrambled))
	is.NoErr(err)
	solutions, err := newFiller(2).FindAll(context.Background(), cb,
		[]string{"cat", "dog"})
	is.NoErr(err)
	is.Equal(len(solutions), 0)
}

func TestFindAllCompleteBoard(t *testing.T) {
	is := is.New(t)
	cb, err := ParseBoard(strings.NewReader("TEN\nI Y\nEYE"))
	is.NoErr(err)
	solutions, err := newFiller(2).FindAll(context.Background(), cb, nil)
	is.NoErr(err)
	is.Equal(solutions, []string{"ten\ni y\neye"})
}

func TestFindAllCancelled(t *testing.T) {
	cb, err := ParseBoard(strings.NewReader(scrambled))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newFiller(2).FindAll(ctx, cb, testWordlist)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCandidateWords(t *testing.T) {
	cb, err := ParseBoard(strings.NewReader(scrambled))
	require.NoError(t, err)
	slot := cb.OpenWords()[0] // top row, pinned to 't' at position 0
	words := candidateWords(slot, testWordlist)
	assert.Equal(t, []string{"ten", "tie", "toe", "tan"}, words)
}
