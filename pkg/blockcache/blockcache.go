// Package blockcache freezes a fully traversed sequence into compressed
// blocks instead of retaining every element in memory. It trades replay CPU
// for resident size: items are msgpack-encoded in fixed-size runs,
// compressed, and decoded lazily block by block on later traversals.
package blockcache

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack"

	"github.com/johnjamespj/chainseq/pkg/sequence"
	"github.com/johnjamespj/chainseq/pkg/util"
)

const DefaultBlockSize = 256

// Wrap behaves like Chain.Cached, except that once a traversal completes,
// the recorded elements are kept as compressed blocks. The same
// first-to-finish rule applies: an abandoned traversal freezes nothing.
// The element type must round-trip through msgpack; a block that fails to
// encode or compress is retained raw, so replay never loses elements.
// The returned store reports replay codec errors through Err.
func Wrap[V any](c *sequence.Chain[V], blockSize int, comp Compressor, dec Decompressor) (*sequence.Chain[V], *Store[V]) {
	if c == nil {
		return nil, nil
	}
	store := NewStore[V](blockSize, comp, dec)
	chain := sequence.FromCursors(func() sequence.Cursor[V] {
		if store.frozen {
			return &BlockCursor[V]{store: store}
		}
		return &recordingCursor[V]{source: c.Itr(), store: store}
	})
	return chain, store
}

type block[V any] struct {
	data  []byte
	sum   []byte
	raw   []V
	count int
}

// Store holds the frozen, block-compressed form of a cached sequence.
type Store[V any] struct {
	id        string
	blockSize int
	comp      Compressor
	dec       Decompressor
	blocks    []block[V]
	frozen    bool
	err       error
}

func NewStore[V any](blockSize int, comp Compressor, dec Decompressor) *Store[V] {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if comp == nil {
		comp = Lz4Compressor{}
	}
	if dec == nil {
		dec = Lz4Decompressor{}
	}
	return &Store[V]{
		id:        uuid.NewString(),
		blockSize: blockSize,
		comp:      comp,
		dec:       dec,
	}
}

// Err returns the first codec error hit while replaying, if any. A replay
// cursor that hits one stops as if exhausted.
func (s *Store[V]) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// Frozen reports whether a completed traversal has populated the store.
func (s *Store[V]) Frozen() bool {
	return s != nil && s.frozen
}

// Blocks reports how many blocks the frozen store holds.
func (s *Store[V]) Blocks() int {
	if s == nil {
		return 0
	}
	return len(s.blocks)
}

func (s *Store[V]) freeze(items []V) {
	for start := 0; start < len(items); start += s.blockSize {
		end := start + s.blockSize
		if end > len(items) {
			end = len(items)
		}
		s.appendBlock(items[start:end])
	}
	s.frozen = true
}

func (s *Store[V]) appendBlock(items []V) {
	data, err := msgpack.Marshal(items)
	if err != nil {
		s.retainRaw(items)
		return
	}
	compressed, err := s.comp.Compress(data)
	if err != nil {
		s.retainRaw(items)
		return
	}
	s.blocks = append(s.blocks, block[V]{
		data:  compressed,
		sum:   util.HashBytes(data),
		count: len(items),
	})
}

func (s *Store[V]) retainRaw(items []V) {
	raw := make([]V, len(items))
	copy(raw, items)
	s.blocks = append(s.blocks, block[V]{raw: raw, count: len(items)})
}

func (s *Store[V]) decode(i int) ([]V, error) {
	b := s.blocks[i]
	if b.raw != nil {
		return b.raw, nil
	}
	data, err := s.dec.Decompress(b.data)
	if err != nil {
		return nil, fmt.Errorf("blockcache %s: block %d: %w", s.id, i, err)
	}
	if !bytes.Equal(util.HashBytes(data), b.sum) {
		return nil, fmt.Errorf("blockcache %s: block %d: checksum mismatch", s.id, i)
	}
	var items []V
	if err := msgpack.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("blockcache %s: block %d: %w", s.id, i, err)
	}
	return items, nil
}

type recordingCursor[V any] struct {
	source sequence.Cursor[V]
	store  *Store[V]
	buffer []V
	done   bool
}

func (c *recordingCursor[V]) Move() (V, bool) {
	if c.done {
		return *new(V), false
	}
	v, ok := c.source.Move()
	if !ok {
		c.done = true
		if !c.store.frozen {
			c.store.freeze(c.buffer)
		}
		c.buffer = nil
		return *new(V), false
	}
	c.buffer = append(c.buffer, v)
	return v, true
}

// BlockCursor replays a frozen store, decoding one block at a time.
type BlockCursor[V any] struct {
	store    *Store[V]
	blockIdx int
	items    []V
	idx      int
}

func (c *BlockCursor[V]) Move() (V, bool) {
	for {
		if c.idx < len(c.items) {
			v := c.items[c.idx]
			c.idx++
			return v, true
		}
		if c.blockIdx >= len(c.store.blocks) {
			return *new(V), false
		}
		items, err := c.store.decode(c.blockIdx)
		if err != nil {
			if c.store.err == nil {
				c.store.err = err
			}
			c.blockIdx = len(c.store.blocks)
			return *new(V), false
		}
		c.blockIdx++
		c.items = items
		c.idx = 0
	}
}
