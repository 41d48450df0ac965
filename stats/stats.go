// Package stats accumulates per-page and per-column statistics over physical
// values: minimum, maximum, value count, and variable-length byte totals.
//
// Minimum and maximum follow the physical ordering. Floats compare with the
// plain < and > operators, so NaN never becomes a minimum or maximum; NaN
// values still count toward the value count. Byte-array values must carry
// data: observing an unset ByteArray and then snapshotting panics, the same
// contract violation as reading it directly.
package stats

import (
	"github.com/arloliu/colenc/physical"
	"github.com/arloliu/colenc/plain"
)

// Collector accumulates statistics for values of a single physical type.
// The zero value is ready to use.
type Collector[T physical.Value] struct {
	min        T
	max        T
	seen       bool
	count      int64
	totalBytes int64
}

// Update observes a single value.
func (c *Collector[T]) Update(v T) {
	c.observeMinMax(v)
	c.count++
	c.totalBytes += int64(physical.HeapSize(v))
}

// UpdateBatch observes a slice of values. Variable-length byte totals are
// accumulated in bulk for ByteArray batches.
func (c *Collector[T]) UpdateBatch(vs []T) {
	for _, v := range vs {
		c.observeMinMax(v)
	}
	c.count += int64(len(vs))

	if total, ok := physical.VariableLengthTotal(vs); ok {
		c.totalBytes += total

		return
	}
	if physical.KindOf[T]() == physical.KindFixedLenByteArray {
		for _, v := range vs {
			c.totalBytes += int64(physical.HeapSize(v))
		}
	}
}

// Merge folds another collector's state into c. The other collector is left
// unchanged.
func (c *Collector[T]) Merge(other *Collector[T]) {
	c.count += other.count
	c.totalBytes += other.totalBytes

	if !other.seen {
		return
	}
	if !c.seen {
		c.min, c.max, c.seen = other.min, other.max, true

		return
	}
	if physical.Compare(other.min, c.min) < 0 {
		c.min = other.min
	}
	if physical.Compare(other.max, c.max) > 0 {
		c.max = other.max
	}
}

// Min returns the smallest observed value. The second result is false until
// a comparable value has been observed.
func (c *Collector[T]) Min() (T, bool) {
	return c.min, c.seen
}

// Max returns the largest observed value. The second result is false until
// a comparable value has been observed.
func (c *Collector[T]) Max() (T, bool) {
	return c.max, c.seen
}

// Count returns the number of observed values, including NaN floats.
func (c *Collector[T]) Count() int64 {
	return c.count
}

// TotalBytes returns the accumulated payload bytes of the byte-array kinds.
// It stays zero for every other kind.
func (c *Collector[T]) TotalBytes() int64 {
	return c.totalBytes
}

// Reset clears the collector for reuse.
func (c *Collector[T]) Reset() {
	var zero T
	c.min, c.max = zero, zero
	c.seen = false
	c.count = 0
	c.totalBytes = 0
}

// Snapshot freezes the current state into a type-erased Statistics. Min and
// max are captured as their wire byte images so headers and page indexes can
// embed them without the value type.
func (c *Collector[T]) Snapshot() Statistics {
	s := Statistics{
		Kind:       physical.KindOf[T](),
		ValueCount: c.count,
		TotalBytes: c.totalBytes,
	}
	if c.seen {
		s.MinSet, s.MaxSet = true, true
		s.MinBytes = plain.AppendRaw(nil, c.min)
		s.MaxBytes = plain.AppendRaw(nil, c.max)
	}

	return s
}

func (c *Collector[T]) observeMinMax(v T) {
	if isNaN(v) {
		return
	}
	if !c.seen {
		c.min, c.max = v, v
		c.seen = true

		return
	}
	if physical.Compare(v, c.min) < 0 {
		c.min = v
	}
	if physical.Compare(v, c.max) > 0 {
		c.max = v
	}
}

func isNaN[T physical.Value](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return x != x
	case float64:
		return x != x
	default:
		return false
	}
}

// Statistics is the type-erased snapshot of a Collector. MinBytes and
// MaxBytes hold the wire byte images of the extremes: fixed-width kinds as
// the bare image plain.AppendRaw produces, byte arrays as their payload
// bytes without a length prefix.
type Statistics struct {
	Kind       physical.Kind
	MinSet     bool
	MaxSet     bool
	ValueCount int64
	TotalBytes int64
	MinBytes   []byte
	MaxBytes   []byte
}
