package sequence

// Distinct yields the first occurrence of each element, suppressing later
// duplicates. The seen-set grows with the number of distinct elements.
func Distinct[V comparable](c *Chain[V]) *Chain[V] {
	if c == nil {
		return nil
	}
	return FromCursors(func() Cursor[V] {
		return &DistinctCursor[V]{Source: c.Itr(), seen: make(map[V]struct{})}
	})
}

// DistinctBy dedupes by a derived key; the first element per key wins.
// A nil key extractor leaves the chain unchanged.
func DistinctBy[V any, K comparable](c *Chain[V], key func(V) K) *Chain[V] {
	if c == nil {
		return nil
	}
	if key == nil {
		return c
	}
	return FromCursors(func() Cursor[V] {
		return &DistinctByCursor[V, K]{Source: c.Itr(), Key: key, seen: make(map[K]struct{})}
	})
}

type DistinctCursor[V comparable] struct {
	Source Cursor[V]
	seen   map[V]struct{}
}

func (d *DistinctCursor[V]) Move() (V, bool) {
	for v, ok := d.Source.Move(); ok; v, ok = d.Source.Move() {
		if _, dup := d.seen[v]; dup {
			continue
		}
		d.seen[v] = struct{}{}
		return v, true
	}
	return *new(V), false
}

type DistinctByCursor[V any, K comparable] struct {
	Source Cursor[V]
	Key    func(V) K
	seen   map[K]struct{}
}

func (d *DistinctByCursor[V, K]) Move() (V, bool) {
	for v, ok := d.Source.Move(); ok; v, ok = d.Source.Move() {
		k := d.Key(v)
		if _, dup := d.seen[k]; dup {
			continue
		}
		d.seen[k] = struct{}{}
		return v, true
	}
	return *new(V), false
}
