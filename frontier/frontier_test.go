package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebench/frontier"
)

func TestFrontier_PopEmpty(t *testing.T) {
	f := frontier.New[string](0)
	_, err := f.Pop()
	assert.ErrorIs(t, err, frontier.ErrEmpty)

	_, _, err = f.Peek()
	assert.ErrorIs(t, err, frontier.ErrEmpty)

	var zero frontier.Frontier[int]
	_, err = zero.Pop()
	assert.ErrorIs(t, err, frontier.ErrEmpty)
}

func TestFrontier_PriorityOrder(t *testing.T) {
	f := frontier.New[string](4)
	f.Push("c", 3)
	f.Push("a", 1)
	f.Push("d", 4.5)
	f.Push("b", 2)
	require.Equal(t, 4, f.Len())

	var got []string
	for f.Len() > 0 {
		s, err := f.Pop()
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

// TestFrontier_TieBreakFIFO checks equal priorities pop in push order.
func TestFrontier_TieBreakFIFO(t *testing.T) {
	f := frontier.New[int](0)
	for i := 0; i < 50; i++ {
		f.Push(i, 7)
	}
	f.Push(-1, 1)

	first, err := f.Pop()
	require.NoError(t, err)
	assert.Equal(t, -1, first)

	for want := 0; want < 50; want++ {
		got, err := f.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFrontier_InterleavedPushPop(t *testing.T) {
	f := frontier.New[string](0)
	f.Push("x", 2)
	f.Push("y", 2)

	s, _ := f.Pop()
	assert.Equal(t, "x", s)

	f.Push("z", 2)
	f.Push("w", 1)

	it, prio, err := f.Peek()
	require.NoError(t, err)
	assert.Equal(t, "w", it)
	assert.Equal(t, 1.0, prio)

	var got []string
	for f.Len() > 0 {
		s, _ := f.Pop()
		got = append(got, s)
	}
	assert.Equal(t, []string{"w", "y", "z"}, got)
}
