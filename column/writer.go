package column

import (
	"fmt"
	"math"

	"github.com/arloliu/colenc/bloom"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/internal/options"
	"github.com/arloliu/colenc/internal/pool"
	"github.com/arloliu/colenc/pageindex"
	"github.com/arloliu/colenc/physical"
	"github.com/arloliu/colenc/plain"
	"github.com/arloliu/colenc/stats"
)

// Writer encodes a stream of values into a paged column. Pages roll over at
// the configured value and byte thresholds; each sealed page records its
// offset entry and, when enabled, its min/max bounds.
//
// A Writer is not safe for concurrent use and is not reusable: after Finish
// or Close, create a new one.
type Writer[T physical.Value] struct {
	*WriterConfig

	desc Descriptor
	enc  *plain.Encoder[T]
	buf  *pool.ByteBuffer

	pageStats stats.Collector[T]
	colStats  stats.Collector[T]
	entries   []pageindex.OffsetEntry
	bounds    pageindex.ColumnIndex
	filter    *bloom.Filter

	single     [1]T
	pageValues int
	numRows    int64
	finished   bool
}

// NewWriter creates a writer for the described column. The descriptor's
// kind must match the value type T.
func NewWriter[T physical.Value](desc Descriptor, opts ...Option) (*Writer[T], error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if kind := physical.KindOf[T](); desc.Kind != kind {
		return nil, fmt.Errorf("%w: descriptor kind %s does not match value type %s",
			errs.ErrTypeMismatch, desc.Kind, kind)
	}

	cfg := newWriterConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	w := &Writer[T]{
		WriterConfig: cfg,
		desc:         desc,
		enc:          plain.NewEncoder[T](),
		buf:          pool.GetColumnBuffer(),
	}
	if cfg.bloomExpected > 0 {
		filter, err := bloom.NewFilter(cfg.bloomExpected, cfg.bloomFP)
		if err != nil {
			w.release()

			return nil, err
		}
		w.filter = filter
	}

	return w, nil
}

// Descriptor returns the column descriptor.
func (w *Writer[T]) Descriptor() Descriptor {
	return w.desc
}

// Kind returns the column's physical kind.
func (w *Writer[T]) Kind() physical.Kind {
	return w.desc.Kind
}

// Len returns the number of values appended so far.
func (w *Writer[T]) Len() int {
	return int(w.numRows)
}

// IsEmpty reports whether no values have been appended.
func (w *Writer[T]) IsEmpty() bool {
	return w.numRows == 0
}

// Append adds one value to the column.
func (w *Writer[T]) Append(v T) error {
	w.single[0] = v

	return w.AppendBatch(w.single[:])
}

// AppendBatch adds a batch of values, rolling pages over as thresholds are
// crossed.
func (w *Writer[T]) AppendBatch(vs []T) error {
	if w.finished {
		return fmt.Errorf("%w: column writer", errs.ErrClosed)
	}

	for len(vs) > 0 {
		room := w.maxPageValues - w.pageValues
		chunk := vs
		if len(chunk) > room {
			chunk = vs[:room]
		}

		if err := w.enc.Put(chunk); err != nil {
			return err
		}
		if w.collectStats {
			w.pageStats.UpdateBatch(chunk)
		}
		if w.filter != nil {
			for _, v := range chunk {
				bloom.AddValue(w.filter, v)
			}
		}
		w.pageValues += len(chunk)
		w.numRows += int64(len(chunk))
		vs = vs[len(chunk):]

		if w.pageValues >= w.maxPageValues || w.enc.EstimatedSize() >= w.maxPageBytes {
			if err := w.sealPage(); err != nil {
				return err
			}
		}
	}

	return nil
}

// Finish seals the pending page and assembles the column. The writer's
// pooled resources are released; the returned column owns its payload.
func (w *Writer[T]) Finish() (*Column, error) {
	if w.finished {
		return nil, fmt.Errorf("%w: column writer", errs.ErrClosed)
	}
	if err := w.sealPage(); err != nil {
		return nil, err
	}
	if w.numRows == 0 {
		w.Close()

		return nil, fmt.Errorf("%w: no values appended", errs.ErrEmptyData)
	}

	pages := pageindex.NewOffsetIndex(w.numRows)
	for _, e := range w.entries {
		if err := pages.Add(e); err != nil {
			return nil, err
		}
	}

	payload := make([]byte, w.buf.Len())
	copy(payload, w.buf.Bytes())

	col := &Column{
		Descriptor: w.desc,
		Engine:     w.engine,
		Payload:    payload,
		Pages:      pages,
		Bounds:     &w.bounds,
		NumRows:    w.numRows,
	}
	if w.collectStats {
		col.Stats = w.colStats.Snapshot()
	}
	if w.filter != nil {
		bloomBytes, err := w.filter.Marshal()
		if err != nil {
			return nil, err
		}
		col.BloomBytes = bloomBytes
	}

	w.Close()

	return col, nil
}

// Close releases the writer's pooled resources without assembling a column.
// It is idempotent and safe to defer alongside Finish.
func (w *Writer[T]) Close() {
	if w.finished {
		return
	}
	w.finished = true
	w.release()
}

func (w *Writer[T]) release() {
	if w.enc != nil {
		w.enc.Close()
		w.enc = nil
	}
	if w.buf != nil {
		pool.PutColumnBuffer(w.buf)
		w.buf = nil
	}
}

// sealPage flushes the encoder into the column buffer as one page frame and
// records its index entries. A page with no values seals to nothing.
func (w *Writer[T]) sealPage() error {
	if w.pageValues == 0 {
		return nil
	}

	firstRow := w.numRows - int64(w.pageValues)
	offset := w.buf.Len()
	if int64(offset) > math.MaxUint32 || firstRow > math.MaxUint32 {
		return fmt.Errorf("%w: column exceeds the uint32 offset range", errs.ErrOverflow)
	}

	var reserved [PageHeaderSize]byte
	w.buf.MustWrite(reserved[:])

	n, err := w.enc.WriteTo(w.buf)
	if err != nil {
		return err
	}
	if n > math.MaxUint32-PageHeaderSize {
		return fmt.Errorf("%w: page payload exceeds the uint32 length range", errs.ErrOverflow)
	}

	header := PageHeader{
		NumValues: uint32(w.pageValues),
		ByteLen:   uint32(n),
		FirstRow:  uint32(firstRow),
	}
	header.WriteToSlice(w.buf.Slice(offset, offset+PageHeaderSize), 0, w.engine)

	w.entries = append(w.entries, pageindex.OffsetEntry{
		Offset:   uint32(offset),
		ByteLen:  uint32(PageHeaderSize + int(n)),
		FirstRow: uint32(firstRow),
	})
	if w.collectStats {
		w.bounds.AddFromStats(w.pageStats.Snapshot())
		w.colStats.Merge(&w.pageStats)
		w.pageStats.Reset()
	} else {
		// Bounds stay page-aligned with empty entries.
		w.bounds.AddFromStats(stats.Statistics{})
	}
	w.pageValues = 0

	return nil
}
