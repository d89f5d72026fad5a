package sequence_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/chainseq/pkg/sequence"
)

func TestMap(t *testing.T) {
	c := sequence.Of(1, 2, 3)
	got := sequence.Map(c, strconv.Itoa)
	require.Equal(t, []string{"1", "2", "3"}, got.ToList())

	require.Nil(t, sequence.Map[int, string](nil, strconv.Itoa))
	require.Nil(t, sequence.Map[int, string](c, nil))
}

func TestFlatMap(t *testing.T) {
	c := sequence.Of(1, 2, 3)

	got := sequence.FlatMap(c, func(v int) sequence.Iterable[int] {
		if v == 2 {
			return sequence.Empty[int]() // vanishes
		}
		return sequence.Of(v, -v)
	})
	require.Equal(t, []int{1, -1, 3, -3}, got.ToList())
}

func TestReplace(t *testing.T) {
	c := sequence.Of("ab", "", "cd")

	got := c.Replace(func(s string) sequence.Iterable[string] {
		if s == "" {
			return nil
		}
		return sequence.Of(s, s)
	})
	require.Equal(t, []string{"ab", "ab", "cd", "cd"}, got.ToList())
	require.Same(t, c, c.Replace(nil))
}

func TestEachIsLazy(t *testing.T) {
	var seen []int
	c := sequence.Of(1, 2, 3).Each(func(v int) { seen = append(seen, v) })
	require.Empty(t, seen)

	c.Take(2).ToList()
	require.Equal(t, []int{1, 2}, seen)
}

func TestApplyCollectsFailuresWithoutAborting(t *testing.T) {
	var processed []int
	boom := errors.New("boom")

	got, err := sequence.Of(1, 2, 3, 4).Apply(func(v int) error {
		processed = append(processed, v)
		if v == 2 {
			return boom
		}
		if v == 3 {
			panic("bad item")
		}
		return nil
	})

	// every element was processed despite two failures
	require.Equal(t, []int{1, 2, 3, 4}, processed)
	require.Equal(t, []int{1, 2, 3, 4}, got.ToList())
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "bad item")
}

func TestApplyNilAction(t *testing.T) {
	got, err := sequence.Of(1, 2).Apply(nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, got.ToList())
}

func TestExtend(t *testing.T) {
	got := sequence.Of(1, 2).Extend(func(last int) (int, bool) {
		if last >= 5 {
			return 0, false
		}
		return last + 1, true
	})
	require.Equal(t, []int{1, 2, 3, 4, 5}, got.ToList())
}

func TestExtendSeedsZeroOnEmpty(t *testing.T) {
	got := sequence.Empty[int]().Extend(func(last int) (int, bool) {
		if last >= 3 {
			return 0, false
		}
		return last + 1, true
	})
	require.Equal(t, []int{1, 2, 3}, got.ToList())
}

func TestExtendIf(t *testing.T) {
	got := sequence.Of(1, 2).ExtendIf(
		func(last int) bool { return last < 4 },
		func(last int) (int, bool) { return last + 1, true },
	)
	require.Equal(t, []int{1, 2, 3, 4}, got.ToList())
}

func TestGroupBy(t *testing.T) {
	c := sequence.Of(1, 2, 3, 4, 5, 6)

	groups := sequence.GroupBy(c, func(v int) int { return v % 2 }).ToList()
	require.Len(t, groups, 2)
	require.Equal(t, 1, groups[0].Key)
	require.Equal(t, []int{1, 3, 5}, groups[0].Items)
	require.Equal(t, 0, groups[1].Key)
	require.Equal(t, []int{2, 4, 6}, groups[1].Items)
}
