// Package colenc provides typed columnar storage primitives: the physical
// value model shared by all columns, the PLAIN binary codec, and a paged
// column writer/reader layer with statistics, page indexes, dictionaries,
// and bloom filters.
//
// # Physical Kinds
//
// Every column stores exactly one physical kind: Boolean, Int32, Int64,
// Int96, Float, Double, ByteArray, or FixedLenByteArray. The physical
// package defines the value types, their ordering, and the capability
// surface (conversions, size accounting); the plain package defines their
// baseline wire layout.
//
// # Basic Usage
//
// One-shot PLAIN encoding and decoding:
//
//	payload, _ := colenc.EncodePlain([]int64{10, 20, 30})
//	values, _ := colenc.DecodePlain[int64](payload, 3, 0)
//
// Building and reading a paged column:
//
//	desc := column.Descriptor{Name: "latency_ms", Kind: physical.KindInt64}
//	w, _ := colenc.NewColumnWriter[int64](desc,
//	    column.WithMaxPageValues(4096),
//	    column.WithBloomFilter(0.01, 100_000),
//	)
//	for _, v := range samples {
//	    _ = w.Append(v)
//	}
//	col, _ := w.Finish()
//
//	r, _ := colenc.NewColumnReader[int64](col)
//	out := make([]int64, col.NumRows)
//	_, _ = r.ReadAll(out)
//
// Schema-driven callers that only know the descriptor at runtime use the
// type-erased builder:
//
//	b, _ := colenc.NewBuilder(desc)
//	_ = b.AppendAny(int64(42))
//	col, _ := b.Finish()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the plain and
// column packages, simplifying the most common use cases. For fine-grained
// control (incremental encoders, page-level reads, dictionaries, page
// indexes), use the plain, column, dict, and pageindex packages directly.
package colenc

import (
	"fmt"

	"github.com/arloliu/colenc/column"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/physical"
	"github.com/arloliu/colenc/plain"
)

// EncodePlain serializes values into a single PLAIN payload. The returned
// slice is freshly allocated and owned by the caller.
func EncodePlain[T physical.Value](values []T) ([]byte, error) {
	enc := plain.NewEncoder[T]()
	defer enc.Close()

	if err := enc.Put(values); err != nil {
		return nil, err
	}

	return enc.FlushBuffer()
}

// DecodePlain decodes numValues values from a PLAIN payload. typeLength is
// the element length for FixedLenByteArray payloads and ignored otherwise.
// Decoded byte-array values are zero-copy views into data.
func DecodePlain[T physical.Value](data []byte, numValues, typeLength int) ([]T, error) {
	if numValues < 0 {
		return nil, fmt.Errorf("%w: negative value count %d", errs.ErrInvalidArgument, numValues)
	}

	dec := plain.NewDecoder[T](typeLength)
	dec.SetData(data, numValues)

	out := make([]T, numValues)
	n, err := dec.Decode(out)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}

// NewColumnWriter creates a paged column writer for the described column.
//
// Available options:
//   - column.WithLittleEndian() / column.WithBigEndian() / column.WithEngine(engine)
//   - column.WithMaxPageValues(n) / column.WithMaxPageBytes(n)
//   - column.WithStatistics(enabled)
//   - column.WithBloomFilter(fpRate, expectedValues)
func NewColumnWriter[T physical.Value](desc column.Descriptor, opts ...column.Option) (*column.Writer[T], error) {
	return column.NewWriter[T](desc, opts...)
}

// NewColumnReader creates a reader over a sealed column.
func NewColumnReader[T physical.Value](col *column.Column) (*column.Reader[T], error) {
	return column.NewReader[T](col)
}

// NewBuilder creates a type-erased column writer from a descriptor alone.
// The concrete value type follows the descriptor's kind.
func NewBuilder(desc column.Descriptor, opts ...column.Option) (column.Builder, error) {
	return column.NewBuilderOf(desc, opts...)
}
