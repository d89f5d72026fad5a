package sequence

// sized is implemented by cursors whose total element count is known
// upfront. Size reports the total for a freshly created cursor.
type sized interface {
	Size() int
}

// indexed is implemented by cursors that support direct element access.
type indexed[V any] interface {
	sized
	At(i int) V
}

type EmptyCursor[V any] struct{}

func (*EmptyCursor[V]) Move() (V, bool) {
	return *new(V), false
}

func (*EmptyCursor[V]) Size() int {
	return 0
}

type SliceCursor[V any] struct {
	Slice []V
	idx   int
}

func (s *SliceCursor[V]) Move() (V, bool) {
	if s.idx < len(s.Slice) {
		v := s.Slice[s.idx]
		s.idx++
		return v, true
	}
	return *new(V), false
}

func (s *SliceCursor[V]) Size() int {
	return len(s.Slice)
}

func (s *SliceCursor[V]) At(i int) V {
	return s.Slice[i]
}

type GeneratorCursor[V any] struct {
	Generator func(idx int) V
	Length    int
	idx       int
}

func (g *GeneratorCursor[V]) Move() (V, bool) {
	if g.idx < g.Length {
		v := g.Generator(g.idx)
		g.idx++
		return v, true
	}
	return *new(V), false
}

func (g *GeneratorCursor[V]) Size() int {
	return g.Length
}

func (g *GeneratorCursor[V]) At(i int) V {
	return g.Generator(i)
}
