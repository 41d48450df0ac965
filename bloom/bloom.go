// Package bloom provides a probabilistic membership filter over physical
// values, keyed by their wire byte images. Column writers feed it while
// appending; readers rehydrate it from the column payload and probe it to
// skip columns that cannot contain a value.
//
// A Filter is not safe for concurrent use.
package bloom

import (
	"bytes"
	"fmt"

	willf_bloom "github.com/willf/bloom"

	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/physical"
	"github.com/arloliu/colenc/plain"
)

// Filter wraps a bloom filter sized for an expected value count and target
// false-positive rate. A tested value may be a false positive, but a value
// that was added always tests true.
type Filter struct {
	filter  *willf_bloom.BloomFilter
	scratch []byte
}

// NewFilter sizes a filter for expectedValues distinct values at the given
// false-positive rate.
func NewFilter(expectedValues uint, fpRate float64) (*Filter, error) {
	if expectedValues == 0 {
		return nil, fmt.Errorf("%w: expected value count must be positive", errs.ErrInvalidArgument)
	}
	if fpRate <= 0 || fpRate >= 1 {
		return nil, fmt.Errorf("%w: false-positive rate %v outside (0, 1)", errs.ErrInvalidArgument, fpRate)
	}

	m, k := willf_bloom.EstimateParameters(expectedValues, fpRate)

	return &Filter{filter: willf_bloom.New(m, k)}, nil
}

// AddValue feeds the wire byte image of v to the filter.
func AddValue[T physical.Value](f *Filter, v T) {
	f.scratch = plain.AppendRaw(f.scratch[:0], v)
	f.filter.Add(f.scratch)
}

// TestValue reports whether v may have been added. False means definitely
// absent.
func TestValue[T physical.Value](f *Filter, v T) bool {
	f.scratch = plain.AppendRaw(f.scratch[:0], v)

	return f.filter.Test(f.scratch)
}

// Marshal serializes the filter for embedding in a column payload.
func (f *Filter) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.filter.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write bloom filter: %w", err)
	}

	return buf.Bytes(), nil
}

// Unmarshal rehydrates a filter serialized by Marshal.
func Unmarshal(data []byte) (*Filter, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: bloom filter payload", errs.ErrEmptyData)
	}

	filter := &willf_bloom.BloomFilter{}
	if _, err := filter.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to read bloom filter: %w", err)
	}

	return &Filter{filter: filter}, nil
}
