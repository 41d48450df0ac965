package column

import (
	"fmt"

	"github.com/arloliu/colenc/byteslice"
	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/physical"
	"github.com/arloliu/colenc/plain"
)

// Reader decodes a sealed column page by page. Each ReadPage call arms one
// decoder session over that page's payload; Skip and further reads within
// the page go through the same session. Decoded byte-array values are
// zero-copy views into the column payload.
//
// A Reader is not safe for concurrent use.
type Reader[T physical.Value] struct {
	col    *Column
	engine endian.EndianEngine
	dec    *plain.Decoder[T]
}

// NewReader creates a reader over col. The column's kind must match the
// value type T.
func NewReader[T physical.Value](col *Column) (*Reader[T], error) {
	if col == nil {
		return nil, fmt.Errorf("%w: nil column", errs.ErrInvalidArgument)
	}
	if kind := physical.KindOf[T](); col.Descriptor.Kind != kind {
		return nil, fmt.Errorf("%w: column kind %s does not match value type %s",
			errs.ErrTypeMismatch, col.Descriptor.Kind, kind)
	}

	engine := col.Engine
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return &Reader[T]{
		col:    col,
		engine: engine,
		dec:    plain.NewDecoder[T](col.Descriptor.TypeLength),
	}, nil
}

// NumRows returns the total number of values in the column.
func (r *Reader[T]) NumRows() int64 {
	return r.col.NumRows
}

// NumPages returns the number of pages in the column.
func (r *Reader[T]) NumPages() int {
	return r.col.NumPages()
}

// PageHeaderAt parses the header of page i.
func (r *Reader[T]) PageHeaderAt(i int) (PageHeader, error) {
	frame, err := r.pageFrame(i)
	if err != nil {
		return PageHeader{}, err
	}

	return ParsePageHeader(frame, r.engine)
}

// ReadPage arms a decode session over page i and decodes up to len(out)
// values into out, returning the count. A short or empty out leaves the rest
// of the page readable through DecodeInPage and SkipInPage.
func (r *Reader[T]) ReadPage(i int, out []T) (int, error) {
	frame, err := r.pageFrame(i)
	if err != nil {
		return 0, err
	}
	header, err := ParsePageHeader(frame, r.engine)
	if err != nil {
		return 0, err
	}

	payload := frame[PageHeaderSize:]
	if int64(len(payload)) != int64(header.ByteLen) {
		return 0, fmt.Errorf("%w: page %d frame carries %d payload bytes, header says %d",
			errs.ErrInvalidArgument, i, len(payload), header.ByteLen)
	}

	r.dec.SetData(payload, int(header.NumValues))

	return r.dec.Decode(out)
}

// SkipInPage advances the armed page's decode position by up to count
// values, returning the count skipped. It requires a prior ReadPage on this
// reader.
func (r *Reader[T]) SkipInPage(count int) (int, error) {
	return r.dec.Skip(count)
}

// RemainingInPage returns how many values the armed page still holds.
func (r *Reader[T]) RemainingInPage() int {
	return r.dec.Remaining()
}

// DecodeInPage decodes up to len(out) further values from the armed page.
func (r *Reader[T]) DecodeInPage(out []T) (int, error) {
	return r.dec.Decode(out)
}

// ReadAll decodes the whole column into out, page by page, returning the
// number of values written. A short out stops after filling its length.
func (r *Reader[T]) ReadAll(out []T) (int, error) {
	written := 0
	for i := 0; i < r.col.NumPages() && written < len(out); i++ {
		n, err := r.ReadPage(i, out[written:])
		if err != nil {
			return written, err
		}
		written += n
	}

	return written, nil
}

// PageForRow resolves a row number to its page index through the offset
// index.
func (r *Reader[T]) PageForRow(row int) (int, error) {
	return r.col.Pages.PageForRow(row)
}

// pageFrame slices page i's frame, header included, out of the payload.
func (r *Reader[T]) pageFrame(i int) ([]byte, error) {
	e, err := r.col.Pages.Entry(i)
	if err != nil {
		return nil, err
	}

	frame, err := byteslice.SliceAtOffset(r.col.Payload, int(e.Offset), 0, int(e.ByteLen))
	if err != nil {
		return nil, fmt.Errorf("page %d frame: %w", i, err)
	}

	return frame, nil
}
