package sequence

import (
	"errors"
	"fmt"
)

// Map yields transform applied to each element.
func Map[I, O any](c *Chain[I], transform func(I) O) *Chain[O] {
	if c == nil || transform == nil {
		return nil
	}
	return FromCursors(func() Cursor[O] {
		return &MapCursor[I, O]{Source: c.Itr(), Transform: transform}
	})
}

// FlatMap expands each element into a sub-sequence and yields the
// sub-sequences back to back. Elements whose expansion is nil or empty
// vanish from the output.
func FlatMap[I, O any](c *Chain[I], transform func(I) Iterable[O]) *Chain[O] {
	if c == nil || transform == nil {
		return nil
	}
	return FromCursors(func() Cursor[O] {
		return &FlatMapCursor[I, O]{Source: c.Itr(), Transform: transform}
	})
}

// Replace is FlatMap constrained to the element type: each element is
// replaced by the sub-sequence replacer returns for it, and elements with a
// nil or empty replacement disappear.
func (c *Chain[V]) Replace(replacer func(V) Iterable[V]) *Chain[V] {
	if c == nil {
		return nil
	}
	if replacer == nil {
		return c
	}
	return FlatMap(c, replacer)
}

// Each invokes action on every element as it is pulled, without forcing
// evaluation.
func (c *Chain[V]) Each(action func(V)) *Chain[V] {
	if c == nil {
		return nil
	}
	if action == nil {
		return c
	}
	return FromCursors(func() Cursor[V] {
		return &EachCursor[V]{Source: c.Itr(), Action: action}
	})
}

// Apply traverses the whole chain eagerly, invoking action on every
// element. A failing or panicking action never prevents the remaining
// elements from being processed; all failures are reported joined into the
// returned error. The returned chain replays the materialized elements.
func (c *Chain[V]) Apply(action func(V) error) (*Chain[V], error) {
	if c == nil {
		return nil, nil
	}
	items := c.ToList()
	if action == nil {
		return FromSlice(items), nil
	}
	var errs []error
	for _, v := range items {
		if err := runAction(action, v); err != nil {
			errs = append(errs, err)
		}
	}
	return FromSlice(items), errors.Join(errs...)
}

func runAction[V any](action func(V) error, v V) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("apply: %v", r)
		}
	}()
	return action(v)
}

// Extend appends the results of repeatedly applying next to the last
// element, starting once the chain is exhausted, until next reports false.
// If the chain is empty, next is seeded with the zero value.
func (c *Chain[V]) Extend(next func(V) (V, bool)) *Chain[V] {
	if c == nil {
		return nil
	}
	if next == nil {
		return c
	}
	return FromCursors(func() Cursor[V] {
		return &ExtendCursor[V]{Source: c.Itr(), Next: next}
	})
}

// ExtendIf is Extend gated by cond: generation only continues while the
// last element satisfies cond.
func (c *Chain[V]) ExtendIf(cond func(V) bool, next func(V) (V, bool)) *Chain[V] {
	if c == nil {
		return nil
	}
	if next == nil {
		return c
	}
	if cond == nil {
		return c.Extend(next)
	}
	return FromCursors(func() Cursor[V] {
		return &ExtendCursor[V]{Source: c.Itr(), Cond: cond, Next: next}
	})
}

// Group is a key with the elements that mapped to it, in first-seen order.
type Group[K comparable, V any] struct {
	Key   K
	Items []V
}

// GroupBy buckets the elements by key, preserving first-seen key order and
// element order within each bucket. The chain is fully evaluated on the
// first pull.
func GroupBy[V any, K comparable](c *Chain[V], key func(V) K) *Chain[Group[K, V]] {
	if c == nil || key == nil {
		return nil
	}
	return FromCursors(func() Cursor[Group[K, V]] {
		index := make(map[K]int)
		var groups []Group[K, V]
		itr := c.Itr()
		for v, ok := itr.Move(); ok; v, ok = itr.Move() {
			k := key(v)
			i, seen := index[k]
			if !seen {
				i = len(groups)
				index[k] = i
				groups = append(groups, Group[K, V]{Key: k})
			}
			groups[i].Items = append(groups[i].Items, v)
		}
		return &SliceCursor[Group[K, V]]{Slice: groups}
	})
}

type MapCursor[I, O any] struct {
	Source    Cursor[I]
	Transform func(I) O
}

func (m *MapCursor[I, O]) Move() (O, bool) {
	if v, ok := m.Source.Move(); ok {
		return m.Transform(v), true
	}
	return *new(O), false
}

type FlatMapCursor[I, O any] struct {
	Source    Cursor[I]
	Transform func(I) Iterable[O]
	current   Cursor[O]
}

func (f *FlatMapCursor[I, O]) Move() (O, bool) {
	for {
		if f.current != nil {
			if v, ok := f.current.Move(); ok {
				return v, true
			}
			f.current = nil
		}
		v, ok := f.Source.Move()
		if !ok {
			return *new(O), false
		}
		if sub := f.Transform(v); sub != nil {
			f.current = sub.Itr()
		}
	}
}

type EachCursor[V any] struct {
	Source Cursor[V]
	Action func(V)
}

func (e *EachCursor[V]) Move() (V, bool) {
	v, ok := e.Source.Move()
	if ok {
		e.Action(v)
	}
	return v, ok
}

type ExtendCursor[V any] struct {
	Source     Cursor[V]
	Cond       func(V) bool
	Next       func(V) (V, bool)
	last       V
	generating bool
	stopped    bool
}

func (e *ExtendCursor[V]) Move() (V, bool) {
	if e.stopped {
		return *new(V), false
	}
	if !e.generating {
		if v, ok := e.Source.Move(); ok {
			e.last = v
			return v, true
		}
		e.generating = true
	}
	if e.Cond != nil && !e.Cond(e.last) {
		e.stopped = true
		return *new(V), false
	}
	v, ok := e.Next(e.last)
	if !ok {
		e.stopped = true
		return *new(V), false
	}
	e.last = v
	return v, true
}
