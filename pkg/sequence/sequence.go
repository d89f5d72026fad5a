package sequence

import "iter"

// Cursor is a single-use, stateful traversal over a sequence. Move advances
// by one element and reports whether an element was produced.
type Cursor[V any] interface {
	Move() (V, bool)
}

// Iterable is anything that can hand out fresh, independent cursors.
type Iterable[V any] interface {
	Itr() Cursor[V]
}

// Chain is a lazily evaluated sequence. It holds only a cursor builder, so
// constructing a chain or applying an operator never touches the underlying
// source. A chain can be traversed any number of times; each Itr call
// produces an independent cursor.
//
// A nil *Chain represents an absent sequence, which is distinct from an
// empty one. Operators called on a nil chain propagate nil; cursors obtained
// from a nil chain are empty.
type Chain[V any] struct {
	builder func() Cursor[V]
}

// FromCursors builds a chain from a cursor factory. The factory is invoked
// once per traversal.
func FromCursors[V any](builder func() Cursor[V]) *Chain[V] {
	return &Chain[V]{builder: builder}
}

func (c *Chain[V]) Itr() Cursor[V] {
	if c == nil {
		return &EmptyCursor[V]{}
	}
	return c.builder()
}

// Empty returns a chain with no elements.
func Empty[V any]() *Chain[V] {
	return FromCursors(func() Cursor[V] { return &EmptyCursor[V]{} })
}

// From wraps an iterable source without copying or traversing it. Wrapping
// a chain returns it unchanged. A nil source yields an empty chain.
func From[V any](src Iterable[V]) *Chain[V] {
	if src == nil {
		return Empty[V]()
	}
	if c, ok := src.(*Chain[V]); ok {
		if c == nil {
			return Empty[V]()
		}
		return c
	}
	return FromCursors(func() Cursor[V] { return src.Itr() })
}

// Of returns a chain over the given items.
func Of[V any](items ...V) *Chain[V] {
	return FromSlice(items)
}

// FromSlice wraps a slice. The slice is referenced, not copied.
func FromSlice[V any](slice []V) *Chain[V] {
	return FromCursors(func() Cursor[V] { return &SliceCursor[V]{Slice: slice} })
}

// Generate returns a chain of length items where the i-th element is
// generator(i). The generator runs on demand, once per pull per traversal.
func Generate[V any](length int, generator func(idx int) V) *Chain[V] {
	if generator == nil || length <= 0 {
		return Empty[V]()
	}
	return FromCursors(func() Cursor[V] {
		return &GeneratorCursor[V]{Generator: generator, Length: length}
	})
}

// Values adapts the chain to a Go range-over-func iterator. The returned
// sequence starts a fresh cursor per range loop, so it remains re-iterable.
func (c *Chain[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		itr := c.Itr()
		for v, ok := itr.Move(); ok; v, ok = itr.Move() {
			if !yield(v) {
				return
			}
		}
	}
}

// ToList materializes the chain into a slice. Returns nil for an absent
// chain and an empty (nil) slice for an empty one.
func (c *Chain[V]) ToList() []V {
	if c == nil {
		return nil
	}
	var list []V
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		list = append(list, v)
	}
	return list
}
