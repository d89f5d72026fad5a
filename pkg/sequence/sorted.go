package sequence

import (
	"cmp"
	"slices"
	"strings"
)

// SortedWith yields the elements ordered by compare. The sort is stable and
// happens on the first pull of each traversal; the source is fully
// materialized. A nil compare leaves the chain unchanged.
func SortedWith[V any](c *Chain[V], compare func(a, b V) int) *Chain[V] {
	if c == nil {
		return nil
	}
	if compare == nil {
		return c
	}
	return FromCursors(func() Cursor[V] {
		items := c.ToList()
		slices.SortStableFunc(items, compare)
		return &SliceCursor[V]{Slice: items}
	})
}

// AscendingByNumber sorts ascending by a numeric key.
func AscendingByNumber[V any](c *Chain[V], key func(V) float64) *Chain[V] {
	if key == nil {
		return passthrough(c)
	}
	return SortedWith(c, func(a, b V) int { return cmp.Compare(key(a), key(b)) })
}

// DescendingByNumber sorts descending by a numeric key.
func DescendingByNumber[V any](c *Chain[V], key func(V) float64) *Chain[V] {
	if key == nil {
		return passthrough(c)
	}
	return SortedWith(c, func(a, b V) int { return cmp.Compare(key(b), key(a)) })
}

// AscendingByText sorts ascending by a text key.
func AscendingByText[V any](c *Chain[V], key func(V) string) *Chain[V] {
	if key == nil {
		return passthrough(c)
	}
	return SortedWith(c, func(a, b V) int { return strings.Compare(key(a), key(b)) })
}

// DescendingByText sorts descending by a text key.
func DescendingByText[V any](c *Chain[V], key func(V) string) *Chain[V] {
	if key == nil {
		return passthrough(c)
	}
	return SortedWith(c, func(a, b V) int { return strings.Compare(key(b), key(a)) })
}

func passthrough[V any](c *Chain[V]) *Chain[V] {
	return c
}
