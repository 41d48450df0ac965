// Package dict interns physical values into a dense dictionary, assigning
// each distinct value a uint32 id in first-seen order.
//
// Identity is the xxHash64 of the value's wire byte image, confirmed by
// comparing the images themselves, so two values share an id exactly when
// their encoded bytes match. Hash collisions between distinct values are
// resolved through per-hash candidate buckets and surface only as a
// diagnostic counter. For floats this identity is the bit pattern: a NaN
// equals itself when the payload bits match, and +0 and -0 stay distinct.
//
// Values must carry data; interning an unset ByteArray panics, the same
// contract violation as reading it directly.
package dict

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/internal/options"
	"github.com/arloliu/colenc/physical"
	"github.com/arloliu/colenc/plain"
)

type config struct {
	initialCapacity int
}

// Option configures an Indexer.
type Option = options.Option[*config]

// WithInitialCapacity pre-sizes the dictionary for n distinct values.
func WithInitialCapacity(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidArgument, n)
		}
		c.initialCapacity = n

		return nil
	})
}

type span struct {
	start int
	end   int
}

// Indexer assigns dense ids to distinct values of one physical type.
type Indexer[T physical.Value] struct {
	buckets    map[uint64][]uint32
	values     []T
	arena      []byte // concatenated wire images, id order
	spans      []span
	collisions int
	dictBytes  int
}

// NewIndexer creates an empty dictionary indexer.
func NewIndexer[T physical.Value](opts ...Option) (*Indexer[T], error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	ix := &Indexer[T]{
		buckets: make(map[uint64][]uint32, cfg.initialCapacity),
	}
	if cfg.initialCapacity > 0 {
		ix.values = make([]T, 0, cfg.initialCapacity)
		ix.spans = make([]span, 0, cfg.initialCapacity)
	}

	return ix, nil
}

// Put interns v and returns its id. isNew reports whether this call added
// the value.
func (ix *Indexer[T]) Put(v T) (id uint32, isNew bool) {
	start := len(ix.arena)
	ix.arena = plain.AppendRaw(ix.arena, v)
	image := ix.arena[start:]
	h := xxhash.Sum64(image)

	ids, seen := ix.buckets[h]
	for _, cand := range ids {
		if bytes.Equal(ix.imageOf(cand), image) {
			ix.arena = ix.arena[:start]

			return cand, false
		}
	}
	if seen {
		ix.collisions++
	}

	id = uint32(len(ix.values))
	ix.values = append(ix.values, v)
	ix.spans = append(ix.spans, span{start: start, end: len(ix.arena)})
	ix.buckets[h] = append(ids, id)
	ix.dictBytes += entrySize(v)

	return id, true
}

// Values returns the interned values in id order. The slice is shared with
// the indexer and is valid until the next Put or Reset.
func (ix *Indexer[T]) Values() []T {
	return ix.values
}

// Len returns the number of distinct values interned.
func (ix *Indexer[T]) Len() int {
	return len(ix.values)
}

// CollisionCount returns how many Put calls hit a hash bucket without
// matching any candidate in it.
func (ix *Indexer[T]) CollisionCount() int {
	return ix.collisions
}

// EstimatedDictSize returns the byte size of the interned dictionary: the
// fixed width per value for fixed-width kinds, prefix plus payload for the
// byte-array kinds.
func (ix *Indexer[T]) EstimatedDictSize() int {
	return ix.dictBytes
}

// Reset clears the dictionary for reuse, keeping allocated capacity.
func (ix *Indexer[T]) Reset() {
	clear(ix.buckets)
	ix.values = ix.values[:0]
	ix.arena = ix.arena[:0]
	ix.spans = ix.spans[:0]
	ix.collisions = 0
	ix.dictBytes = 0
}

func (ix *Indexer[T]) imageOf(id uint32) []byte {
	s := ix.spans[id]

	return ix.arena[s.start:s.end]
}

func entrySize[T physical.Value](v T) int {
	width, count := physical.DictEncodingSize(v)
	switch physical.KindOf[T]() {
	case physical.KindByteArray, physical.KindFixedLenByteArray:
		return width + count
	default:
		return width
	}
}
