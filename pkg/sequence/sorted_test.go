package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/chainseq/pkg/sequence"
)

func TestSortedWith(t *testing.T) {
	c := sequence.Of(3, 1, 2)
	sorted := sequence.SortedWith(c, func(a, b int) int { return a - b })

	require.Equal(t, []int{1, 2, 3}, sorted.ToList())

	// the source order is untouched and the sorted view re-iterates
	require.Equal(t, []int{3, 1, 2}, c.ToList())
	require.Equal(t, []int{1, 2, 3}, sorted.ToList())
}

func TestSortedWithIsStable(t *testing.T) {
	type row struct {
		key  int
		name string
	}
	c := sequence.Of(
		row{2, "a"},
		row{1, "b"},
		row{2, "c"},
		row{1, "d"},
	)

	got := sequence.SortedWith(c, func(a, b row) int { return a.key - b.key }).ToList()
	require.Equal(t, []row{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, got)
}

func TestSortedWithSortsPerTraversal(t *testing.T) {
	src := []int{3, 1, 2}
	c := sequence.Generate(len(src), func(i int) int { return src[i] })
	sorted := sequence.SortedWith(c, func(a, b int) int { return a - b })

	require.Equal(t, []int{1, 2, 3}, sorted.ToList())

	// a change to the source shows up on the next traversal
	src[0] = 0
	require.Equal(t, []int{0, 1, 2}, sorted.ToList())
}

func TestSortedWithNilCompare(t *testing.T) {
	c := sequence.Of(3, 1)
	require.Same(t, c, sequence.SortedWith[int](c, nil))

	var absent *sequence.Chain[int]
	require.Nil(t, sequence.SortedWith(absent, func(a, b int) int { return a - b }))
}

func TestSortByNumber(t *testing.T) {
	c := sequence.Of("ccc", "a", "bb")
	byLen := func(s string) float64 { return float64(len(s)) }

	require.Equal(t, []string{"a", "bb", "ccc"}, sequence.AscendingByNumber(c, byLen).ToList())
	require.Equal(t, []string{"ccc", "bb", "a"}, sequence.DescendingByNumber(c, byLen).ToList())
}

func TestSortByText(t *testing.T) {
	c := sequence.Of(3, 1, 20)
	asText := func(v int) string {
		return []string{"one", "three", "twenty"}[map[int]int{1: 0, 3: 1, 20: 2}[v]]
	}

	require.Equal(t, []int{1, 3, 20}, sequence.AscendingByText(c, asText).ToList())
	require.Equal(t, []int{20, 3, 1}, sequence.DescendingByText(c, asText).ToList())
}

func TestSortNilKeyIsIdentity(t *testing.T) {
	c := sequence.Of(2, 1)
	require.Same(t, c, sequence.AscendingByNumber[int](c, nil))
	require.Same(t, c, sequence.DescendingByText[int](c, nil))
}
