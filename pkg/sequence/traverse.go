package sequence

import (
	"container/list"

	lru "github.com/hashicorp/golang-lru/v2"
)

// BreadthFirst explores the graph rooted at the chain's elements level by
// level: each yielded element is expanded through expand and its children
// are queued behind all currently pending elements. An element already
// yielded in the same traversal is skipped silently, so cyclic graphs
// terminate. Nil and empty expansion results both mean "no children".
// A nil expand leaves the chain unchanged.
func BreadthFirst[V comparable](c *Chain[V], expand func(V) Iterable[V]) *Chain[V] {
	return traverse(c, expand, true)
}

// DepthFirst explores the graph depth first: children are visited before
// the siblings of their parent. Cycle handling matches BreadthFirst.
func DepthFirst[V comparable](c *Chain[V], expand func(V) Iterable[V]) *Chain[V] {
	return traverse(c, expand, false)
}

// BreadthFirstUntil stops expanding below any element satisfying stop; the
// element itself is still yielded.
func BreadthFirstUntil[V comparable](c *Chain[V], expand func(V) Iterable[V], stop func(V) bool) *Chain[V] {
	if stop == nil {
		return BreadthFirst(c, expand)
	}
	if expand == nil {
		return passthrough(c)
	}
	return BreadthFirst(c, func(v V) Iterable[V] {
		if stop(v) {
			return Empty[V]()
		}
		return expand(v)
	})
}

// BreadthFirstWhile keeps only the expanded children that satisfy keep;
// children failing keep are pruned along with everything below them.
func BreadthFirstWhile[V comparable](c *Chain[V], expand func(V) Iterable[V], keep func(V) bool) *Chain[V] {
	if keep == nil {
		return BreadthFirst(c, expand)
	}
	if expand == nil {
		return passthrough(c)
	}
	return BreadthFirst(c, func(v V) Iterable[V] {
		return From(expand(v)).Where(keep)
	})
}

// MemoizeExpander caches expansion results in a 2Q LRU cache of the given
// size, so repeated traversals over the same graph do not recompute child
// sets. The wrapped function is safe to share across traversals.
func MemoizeExpander[V comparable](expand func(V) Iterable[V], size int) func(V) Iterable[V] {
	if expand == nil {
		return nil
	}
	cache, err := lru.New2Q[V, []V](size)
	if err != nil {
		return expand
	}
	return func(v V) Iterable[V] {
		if children, ok := cache.Get(v); ok {
			return FromSlice(children)
		}
		children := From(expand(v)).ToList()
		cache.Add(v, children)
		return FromSlice(children)
	}
}

func traverse[V comparable](c *Chain[V], expand func(V) Iterable[V], breadthFirst bool) *Chain[V] {
	if c == nil {
		return nil
	}
	if expand == nil {
		return c
	}
	return FromCursors(func() Cursor[V] {
		tc := &TraverseCursor[V]{
			Expand:       expand,
			BreadthFirst: breadthFirst,
			seen:         make(map[V]struct{}),
		}
		tc.frontier.PushBack(c.Itr())
		return tc
	})
}

// TraverseCursor produces graph elements from a frontier of pending
// cursors: the front cursor is drained one element at a time, and each
// yielded element contributes a child cursor pushed to the back (breadth
// first) or front (depth first) of the frontier.
type TraverseCursor[V comparable] struct {
	Expand       func(V) Iterable[V]
	BreadthFirst bool
	frontier     list.List
	seen         map[V]struct{}
}

func (t *TraverseCursor[V]) Move() (V, bool) {
	for t.frontier.Len() > 0 {
		front := t.frontier.Front()
		cur := front.Value.(Cursor[V])
		v, ok := cur.Move()
		if !ok {
			t.frontier.Remove(front)
			continue
		}
		if _, dup := t.seen[v]; dup {
			// revisit of an already yielded element: cycle protection
			continue
		}
		t.seen[v] = struct{}{}
		if children := t.Expand(v); children != nil {
			childCur := children.Itr()
			if t.BreadthFirst {
				t.frontier.PushBack(childCur)
			} else {
				t.frontier.PushFront(childCur)
			}
		}
		return v, true
	}
	return *new(V), false
}
