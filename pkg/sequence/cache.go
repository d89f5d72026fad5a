package sequence

// FromOneShot makes a single-use cursor traversable any number of times.
// All cursors read through one shared append-only record of the source's
// output: an element is pulled from the source at most once, when the
// first cursor to need it reaches that position. Concurrent cursors at
// different positions interleave freely and all observe the same element
// order. Once the source reports exhaustion it is never touched again.
func FromOneShot[V any](source Cursor[V]) *Chain[V] {
	if source == nil {
		return Empty[V]()
	}
	rec := &recording[V]{source: source}
	return FromCursors(func() Cursor[V] {
		return &ReplayCursor[V]{rec: rec}
	})
}

// Cached returns a chain that behaves like the receiver until one
// traversal runs to full completion; from then on every new cursor replays
// the recorded elements instead of re-evaluating upstream. An abandoned
// traversal records nothing. When several cursors race, the first to
// complete freezes the cache; the others keep delivering their own results
// but no longer contribute to it.
func (c *Chain[V]) Cached() *Chain[V] {
	if c == nil {
		return nil
	}
	store := &cacheStore[V]{}
	return FromCursors(func() Cursor[V] {
		if store.frozen {
			return &SliceCursor[V]{Slice: store.items}
		}
		return &CachingCursor[V]{Source: c.Itr(), store: store}
	})
}

type recording[V any] struct {
	source  Cursor[V]
	items   []V
	drained bool
}

func (r *recording[V]) at(idx int) (V, bool) {
	if idx < len(r.items) {
		return r.items[idx], true
	}
	if r.drained {
		return *new(V), false
	}
	v, ok := r.source.Move()
	if !ok {
		r.drained = true
		r.source = nil
		return *new(V), false
	}
	r.items = append(r.items, v)
	return v, true
}

type ReplayCursor[V any] struct {
	rec *recording[V]
	idx int
}

func (c *ReplayCursor[V]) Move() (V, bool) {
	v, ok := c.rec.at(c.idx)
	if ok {
		c.idx++
	}
	return v, ok
}

type cacheStore[V any] struct {
	items  []V
	frozen bool
}

type CachingCursor[V any] struct {
	Source Cursor[V]
	store  *cacheStore[V]
	buffer []V
	done   bool
}

func (c *CachingCursor[V]) Move() (V, bool) {
	if c.done {
		return *new(V), false
	}
	v, ok := c.Source.Move()
	if !ok {
		c.done = true
		if !c.store.frozen {
			// first traversal to complete wins the cache
			c.store.items = c.buffer
			c.store.frozen = true
		}
		c.buffer = nil
		return *new(V), false
	}
	c.buffer = append(c.buffer, v)
	return v, true
}
