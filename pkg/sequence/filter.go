package sequence

import "github.com/johnjamespj/chainseq/pkg/util"

// Where yields the elements satisfying pred. Nil-valued elements (nil
// pointers, interfaces, maps and so on boxed into V) are skipped whether or
// not they satisfy pred. A nil pred leaves the chain unchanged.
func (c *Chain[V]) Where(pred func(V) bool) *Chain[V] {
	return c.WhereEither(pred)
}

// WhereEither yields the elements satisfying at least one of preds.
// Nil predicates are ignored; with no effective predicate the chain is
// returned unchanged.
func (c *Chain[V]) WhereEither(preds ...func(V) bool) *Chain[V] {
	if c == nil {
		return nil
	}
	live := make([]func(V) bool, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			live = append(live, p)
		}
	}
	if len(live) == 0 {
		return c
	}
	return FromCursors(func() Cursor[V] {
		return &WhereCursor[V]{Source: c.Itr(), Predicates: live}
	})
}

// NotWhere yields the elements that do not satisfy pred.
func (c *Chain[V]) NotWhere(pred func(V) bool) *Chain[V] {
	if c == nil {
		return nil
	}
	if pred == nil {
		return c
	}
	return c.WhereEither(func(v V) bool { return !pred(v) })
}

// WithoutNil drops nil-valued elements.
func (c *Chain[V]) WithoutNil() *Chain[V] {
	return c.WhereEither(func(V) bool { return true })
}

type WhereCursor[V any] struct {
	Source     Cursor[V]
	Predicates []func(V) bool
}

func (w *WhereCursor[V]) Move() (V, bool) {
	for v, ok := w.Source.Move(); ok; v, ok = w.Source.Move() {
		if util.IsNil(v) {
			continue
		}
		for _, pred := range w.Predicates {
			if pred(v) {
				return v, true
			}
		}
	}
	return *new(V), false
}
