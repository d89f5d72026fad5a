package sequence

import "container/list"

// Concat yields all elements of the receiver followed by the elements of
// each of the others in order. Nil and absent members are skipped
// transparently. The result is absent only when the receiver is absent and
// no other sources are given.
func (c *Chain[V]) Concat(others ...Iterable[V]) *Chain[V] {
	if c == nil && len(others) == 0 {
		return nil
	}
	sources := make([]Iterable[V], 0, len(others)+1)
	if c != nil {
		sources = append(sources, c)
	}
	for _, o := range others {
		if o == nil {
			continue
		}
		if ch, ok := o.(*Chain[V]); ok && ch == nil {
			continue
		}
		sources = append(sources, o)
	}
	return ConcatAll(sources...)
}

// ConcatAll concatenates the given sources in order, skipping nil members.
func ConcatAll[V any](sources ...Iterable[V]) *Chain[V] {
	if len(sources) == 0 {
		return Empty[V]()
	}
	return FromCursors(func() Cursor[V] {
		return &ConcatCursor[V]{Sources: sources}
	})
}

// Append yields the receiver's elements followed by the given items.
func (c *Chain[V]) Append(items ...V) *Chain[V] {
	if c == nil {
		return FromSlice(items)
	}
	return c.Concat(FromSlice(items))
}

// ConcatEach expands each pulled element through lister and inserts the
// resulting sub-sequence immediately after that element, before the rest of
// the chain continues. A nil lister leaves the chain unchanged.
func (c *Chain[V]) ConcatEach(lister func(V) Iterable[V]) *Chain[V] {
	if c == nil {
		return nil
	}
	if lister == nil {
		return c
	}
	return FromCursors(func() Cursor[V] {
		return &ConcatEachCursor[V]{Source: c.Itr(), Lister: lister}
	})
}

// Interleave round-robins one element at a time across the receiver and the
// others, in the order supplied. A source that becomes exhausted is dropped
// and the remaining ones continue until all are exhausted.
func (c *Chain[V]) Interleave(others ...Iterable[V]) *Chain[V] {
	if c == nil {
		return nil
	}
	sources := make([]Iterable[V], 0, len(others)+1)
	sources = append(sources, c)
	for _, o := range others {
		if o != nil {
			sources = append(sources, o)
		}
	}
	return FromCursors(func() Cursor[V] {
		cur := &InterleaveCursor[V]{}
		for _, s := range sources {
			cur.cursors.PushBack(s.Itr())
		}
		return cur
	})
}

// Reverse yields the elements back to front. The first pull materializes
// the whole chain.
func (c *Chain[V]) Reverse() *Chain[V] {
	if c == nil {
		return nil
	}
	return FromCursors(func() Cursor[V] {
		return &ReverseCursor[V]{Source: c.Itr()}
	})
}

type ConcatCursor[V any] struct {
	Sources []Iterable[V]
	idx     int
	current Cursor[V]
}

func (c *ConcatCursor[V]) Move() (V, bool) {
	for {
		if c.current == nil {
			if c.idx >= len(c.Sources) {
				return *new(V), false
			}
			src := c.Sources[c.idx]
			c.idx++
			if src == nil {
				continue
			}
			c.current = src.Itr()
		}
		if v, ok := c.current.Move(); ok {
			return v, true
		}
		c.current = nil
	}
}

type ConcatEachCursor[V any] struct {
	Source   Cursor[V]
	Lister   func(V) Iterable[V]
	inserted Cursor[V]
}

func (c *ConcatEachCursor[V]) Move() (V, bool) {
	if c.inserted != nil {
		if v, ok := c.inserted.Move(); ok {
			return v, true
		}
		c.inserted = nil
	}
	v, ok := c.Source.Move()
	if !ok {
		return *new(V), false
	}
	if sub := c.Lister(v); sub != nil {
		c.inserted = sub.Itr()
	}
	return v, true
}

type InterleaveCursor[V any] struct {
	cursors list.List
}

func (i *InterleaveCursor[V]) Move() (V, bool) {
	for i.cursors.Len() > 0 {
		front := i.cursors.Front()
		i.cursors.Remove(front)
		cur := front.Value.(Cursor[V])
		if v, ok := cur.Move(); ok {
			i.cursors.PushBack(cur)
			return v, true
		}
	}
	return *new(V), false
}

type ReverseCursor[V any] struct {
	Source   Cursor[V]
	stack    []V
	buffered bool
}

func (r *ReverseCursor[V]) Move() (V, bool) {
	if !r.buffered {
		for v, ok := r.Source.Move(); ok; v, ok = r.Source.Move() {
			r.stack = append(r.stack, v)
		}
		r.buffered = true
	}
	if len(r.stack) == 0 {
		return *new(V), false
	}
	v := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return v, true
}
