package sequence

// Count reports the number of elements, using the source's known size when
// available and a full traversal otherwise.
func (c *Chain[V]) Count() int {
	if c == nil {
		return 0
	}
	itr := c.Itr()
	if s, ok := itr.(sized); ok {
		return s.Size()
	}
	n := 0
	for _, ok := itr.Move(); ok; _, ok = itr.Move() {
		n++
	}
	return n
}

// First returns the first element, if any.
func (c *Chain[V]) First() (V, bool) {
	if c == nil {
		return *new(V), false
	}
	return c.Itr().Move()
}

// FirstWhere returns the first element satisfying any of preds. With no
// effective predicate it behaves like First.
func (c *Chain[V]) FirstWhere(preds ...func(V) bool) (V, bool) {
	live := make([]func(V) bool, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			live = append(live, p)
		}
	}
	if len(live) == 0 {
		return c.First()
	}
	if c == nil {
		return *new(V), false
	}
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		for _, pred := range live {
			if pred(v) {
				return v, true
			}
		}
	}
	return *new(V), false
}

// Last returns the final element, using direct indexed access when the
// source supports it and a full traversal otherwise.
func (c *Chain[V]) Last() (V, bool) {
	if c == nil {
		return *new(V), false
	}
	itr := c.Itr()
	if ix, ok := itr.(indexed[V]); ok {
		n := ix.Size()
		if n == 0 {
			return *new(V), false
		}
		return ix.At(n - 1), true
	}
	var last V
	found := false
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		last = v
		found = true
	}
	return last, found
}

// LastN yields the trailing n elements. The first pull of each traversal
// materializes the chain.
func (c *Chain[V]) LastN(n int) *Chain[V] {
	if c == nil {
		return nil
	}
	return FromCursors(func() Cursor[V] {
		items := c.ToList()
		start := len(items) - n
		if start < 0 {
			start = 0
		}
		if n <= 0 {
			start = len(items)
		}
		return &SliceCursor[V]{Slice: items[start:]}
	})
}

// IsEmpty reports whether the chain has no elements, pulling at most one.
func (c *Chain[V]) IsEmpty() bool {
	if c == nil {
		return true
	}
	_, ok := c.Itr().Move()
	return !ok
}

// AnyWhere reports whether any element satisfies pred.
func (c *Chain[V]) AnyWhere(pred func(V) bool) bool {
	if c == nil || pred == nil {
		return false
	}
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		if pred(v) {
			return true
		}
	}
	return false
}

// AllWhere reports whether every element satisfies pred, short-circuiting
// on the first failure.
func (c *Chain[V]) AllWhere(pred func(V) bool) bool {
	if c == nil || pred == nil {
		return true
	}
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// NoneWhere reports whether no element satisfies pred.
func (c *Chain[V]) NoneWhere(pred func(V) bool) bool {
	return !c.AnyWhere(pred)
}

// AtLeast reports whether the chain has at least min elements, stopping as
// soon as that is known.
func (c *Chain[V]) AtLeast(min int) bool {
	if min <= 0 {
		return true
	}
	if c == nil {
		return false
	}
	itr := c.Itr()
	n := 0
	for _, ok := itr.Move(); ok; _, ok = itr.Move() {
		n++
		if n >= min {
			return true
		}
	}
	return false
}

// AtMost reports whether the chain has at most max elements, stopping as
// soon as it is exceeded.
func (c *Chain[V]) AtMost(max int) bool {
	if c == nil {
		return max >= 0
	}
	if max < 0 {
		return false
	}
	itr := c.Itr()
	n := 0
	for _, ok := itr.Move(); ok; _, ok = itr.Move() {
		n++
		if n > max {
			return false
		}
	}
	return true
}

// Min returns the element with the smallest numeric key. Ties keep the
// earliest-seen element.
func Min[V any](c *Chain[V], value func(V) float64) (V, bool) {
	if c == nil || value == nil {
		return *new(V), false
	}
	var best V
	var bestVal float64
	found := false
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		n := value(v)
		if !found || n < bestVal {
			best, bestVal, found = v, n, true
		}
	}
	return best, found
}

// Max returns the element with the largest numeric key. Ties keep the
// earliest-seen element.
func Max[V any](c *Chain[V], value func(V) float64) (V, bool) {
	if c == nil || value == nil {
		return *new(V), false
	}
	var best V
	var bestVal float64
	found := false
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		n := value(v)
		if !found || n > bestVal {
			best, bestVal, found = v, n, true
		}
	}
	return best, found
}

// Sum totals the numeric key over all elements.
func Sum[V any](c *Chain[V], value func(V) int64) int64 {
	if c == nil || value == nil {
		return 0
	}
	var sum int64
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		sum += value(v)
	}
	return sum
}

// Contains reports whether item occurs in the chain.
func Contains[V comparable](c *Chain[V], item V) bool {
	if c == nil {
		return false
	}
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		if v == item {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every one of items occurs somewhere in the
// chain, in any order, traversing the chain once.
func ContainsAll[V comparable](c *Chain[V], items ...V) bool {
	if len(items) == 0 {
		return true
	}
	if c == nil {
		return false
	}
	missing := make(map[V]struct{}, len(items))
	for _, item := range items {
		missing[item] = struct{}{}
	}
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		delete(missing, v)
		if len(missing) == 0 {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any of items occurs in the chain.
func ContainsAny[V comparable](c *Chain[V], items ...V) bool {
	if c == nil || len(items) == 0 {
		return false
	}
	wanted := make(map[V]struct{}, len(items))
	for _, item := range items {
		wanted[item] = struct{}{}
	}
	itr := c.Itr()
	for v, ok := itr.Move(); ok; v, ok = itr.Move() {
		if _, hit := wanted[v]; hit {
			return true
		}
	}
	return false
}

// ContainsSubarray reports whether sub occurs in the chain as a contiguous
// run. Both sequences are materialized. A nil or empty sub matches any
// non-absent chain.
func ContainsSubarray[V comparable](c *Chain[V], sub *Chain[V]) bool {
	if c == nil {
		return false
	}
	subList := sub.ToList()
	if len(subList) == 0 {
		return true
	}
	items := c.ToList()
	for i := 0; i+len(subList) <= len(items); i++ {
		matched := true
		for j := range subList {
			if items[i+j] != subList[j] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// Equal reports element-wise equality of the two chains: same length, same
// values in the same order, short-circuiting on the first mismatch. Two
// absent chains are equal; an absent chain never equals a present one.
func Equal[V comparable](a, b *Chain[V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ia, ib := a.Itr(), b.Itr()
	for {
		va, oka := ia.Move()
		vb, okb := ib.Move()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if va != vb {
			return false
		}
	}
}

// StartsWith reports whether the chain begins with the given prefix.
func StartsWith[V comparable](c, prefix *Chain[V]) bool {
	return StartsWithEither(c, prefix)
}

// StartsWithEither reports whether the chain begins with any of the given
// prefixes, pulling no more elements than the longest prefix needs.
func StartsWithEither[V comparable](c *Chain[V], prefixes ...*Chain[V]) bool {
	if c == nil || c.IsEmpty() {
		return false
	}
	for _, prefix := range prefixes {
		if prefix == nil {
			continue
		}
		pi := prefix.Itr()
		ci := c.Itr()
		matched := true
		for pv, pok := pi.Move(); pok; pv, pok = pi.Move() {
			cv, cok := ci.Move()
			if !cok || cv != pv {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// EndsWith reports whether the chain ends with the given suffix.
func EndsWith[V comparable](c, suffix *Chain[V]) bool {
	return EndsWithEither(c, suffix)
}

// EndsWithEither reports whether the chain ends with any of the given
// suffixes. The chain is materialized once.
func EndsWithEither[V comparable](c *Chain[V], suffixes ...*Chain[V]) bool {
	if c == nil {
		return false
	}
	items := c.ToList()
	if len(items) == 0 {
		return false
	}
	for _, suffix := range suffixes {
		if suffix == nil {
			continue
		}
		suffixList := suffix.ToList()
		if len(suffixList) > len(items) {
			continue
		}
		matched := true
		offset := len(items) - len(suffixList)
		for j := range suffixList {
			if items[offset+j] != suffixList[j] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
