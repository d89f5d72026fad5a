package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/chainseq/pkg/sequence"
)

func TestDistinct(t *testing.T) {
	c := sequence.Of(1, 2, 1, 3, 2, 1)
	require.Equal(t, []int{1, 2, 3}, sequence.Distinct(c).ToList())
}

func TestDistinctPreservesFirstSeenOrder(t *testing.T) {
	c := sequence.Of("b", "a", "b", "c", "a")
	require.Equal(t, []string{"b", "a", "c"}, sequence.Distinct(c).ToList())
}

func TestDistinctIsReIterable(t *testing.T) {
	d := sequence.Distinct(sequence.Of(1, 1, 2))
	require.Equal(t, []int{1, 2}, d.ToList())
	// a fresh traversal starts with a fresh seen-set
	require.Equal(t, []int{1, 2}, d.ToList())
}

func TestDistinctBy(t *testing.T) {
	c := sequence.Of("a", "bb", "c", "dd", "eee")

	// first element per key wins
	got := sequence.DistinctBy(c, func(s string) int { return len(s) })
	require.Equal(t, []string{"a", "bb", "eee"}, got.ToList())

	require.Same(t, c, sequence.DistinctBy[string, int](c, nil))
}

func TestDistinctOnAbsent(t *testing.T) {
	var absent *sequence.Chain[int]
	require.Nil(t, sequence.Distinct(absent))
	require.Nil(t, sequence.DistinctBy(absent, func(v int) int { return v }))
}
