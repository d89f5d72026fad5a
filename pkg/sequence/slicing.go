package sequence

// Before yields the elements strictly preceding the first one that
// satisfies pred. The satisfying element and everything after it are
// dropped. A nil pred leaves the chain unchanged.
func (c *Chain[V]) Before(pred func(V) bool) *Chain[V] {
	if c == nil {
		return nil
	}
	if pred == nil {
		return c
	}
	return FromCursors(func() Cursor[V] {
		return &BeforeCursor[V]{Source: c.Itr(), Predicate: pred}
	})
}

// NotAfter yields the elements up to and including the first one that
// satisfies pred, then stops.
func (c *Chain[V]) NotAfter(pred func(V) bool) *Chain[V] {
	if c == nil {
		return nil
	}
	if pred == nil {
		return c
	}
	return FromCursors(func() Cursor[V] {
		return &NotAfterCursor[V]{Source: c.Itr(), Predicate: pred}
	})
}

// AsLongAs yields the leading elements that keep satisfying pred, stopping
// at the first one that does not.
func (c *Chain[V]) AsLongAs(pred func(V) bool) *Chain[V] {
	if c == nil {
		return nil
	}
	if pred == nil {
		return c
	}
	return c.Before(func(v V) bool { return !pred(v) })
}

// NotBefore skips everything preceding the first element that satisfies
// pred, then yields that element and all subsequent ones. If pred is never
// satisfied the result is empty.
func (c *Chain[V]) NotBefore(pred func(V) bool) *Chain[V] {
	if c == nil {
		return nil
	}
	if pred == nil {
		return c
	}
	return FromCursors(func() Cursor[V] {
		return &NotBeforeCursor[V]{Source: c.Itr(), Predicate: pred}
	})
}

// NotAsLongAs skips the longest prefix whose elements all satisfy pred and
// yields the rest, starting with the first failing element.
func (c *Chain[V]) NotAsLongAs(pred func(V) bool) *Chain[V] {
	if c == nil {
		return nil
	}
	if pred == nil {
		return c
	}
	return c.NotBefore(func(v V) bool { return !pred(v) })
}

// Take yields at most n leading elements.
func (c *Chain[V]) Take(n int) *Chain[V] {
	if c == nil {
		return nil
	}
	return FromCursors(func() Cursor[V] {
		return &TakeCursor[V]{Source: c.Itr(), N: n}
	})
}

// Skip drops the first n elements.
func (c *Chain[V]) Skip(n int) *Chain[V] {
	if c == nil {
		return nil
	}
	return FromCursors(func() Cursor[V] {
		return &SkipCursor[V]{Source: c.Itr(), N: n}
	})
}

// BeforeValue yields the elements preceding the first occurrence of item.
func BeforeValue[V comparable](c *Chain[V], item V) *Chain[V] {
	return c.Before(func(v V) bool { return v == item })
}

// NotBeforeValue yields item and everything after its first occurrence.
func NotBeforeValue[V comparable](c *Chain[V], item V) *Chain[V] {
	return c.NotBefore(func(v V) bool { return v == item })
}

// AsLongAsValue yields the leading run of elements equal to item.
func AsLongAsValue[V comparable](c *Chain[V], item V) *Chain[V] {
	return c.AsLongAs(func(v V) bool { return v == item })
}

// NotAsLongAsValue skips the leading run of elements equal to item.
func NotAsLongAsValue[V comparable](c *Chain[V], item V) *Chain[V] {
	return c.NotAsLongAs(func(v V) bool { return v == item })
}

type BeforeCursor[V any] struct {
	Source    Cursor[V]
	Predicate func(V) bool
	stopped   bool
}

func (b *BeforeCursor[V]) Move() (V, bool) {
	if b.stopped {
		return *new(V), false
	}
	v, ok := b.Source.Move()
	if !ok || b.Predicate(v) {
		b.stopped = true
		return *new(V), false
	}
	return v, true
}

type NotAfterCursor[V any] struct {
	Source    Cursor[V]
	Predicate func(V) bool
	stopped   bool
}

func (n *NotAfterCursor[V]) Move() (V, bool) {
	if n.stopped {
		return *new(V), false
	}
	v, ok := n.Source.Move()
	if !ok {
		n.stopped = true
		return *new(V), false
	}
	if n.Predicate(v) {
		n.stopped = true
	}
	return v, true
}

type NotBeforeCursor[V any] struct {
	Source    Cursor[V]
	Predicate func(V) bool
	started   bool
}

func (n *NotBeforeCursor[V]) Move() (V, bool) {
	if n.started {
		return n.Source.Move()
	}
	for v, ok := n.Source.Move(); ok; v, ok = n.Source.Move() {
		if n.Predicate(v) {
			n.started = true
			return v, true
		}
	}
	return *new(V), false
}

type TakeCursor[V any] struct {
	Source Cursor[V]
	N      int
	idx    int
}

func (t *TakeCursor[V]) Move() (V, bool) {
	if t.idx >= t.N {
		return *new(V), false
	}
	t.idx++
	return t.Source.Move()
}

type SkipCursor[V any] struct {
	Source Cursor[V]
	N      int
	idx    int
}

func (s *SkipCursor[V]) Move() (V, bool) {
	for s.idx < s.N {
		s.idx++
		if _, ok := s.Source.Move(); !ok {
			s.idx = s.N
			return *new(V), false
		}
	}
	return s.Source.Move()
}
