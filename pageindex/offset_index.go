package pageindex

import (
	"fmt"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/search"
)

// OffsetIndex holds the ordered page locations of one column plus the total
// row count the pages cover. The row count travels outside the wire entries;
// writers supply it when building and readers when parsing.
type OffsetIndex struct {
	entries  []OffsetEntry
	rowCount int64
}

// NewOffsetIndex creates an empty index covering rowCount rows.
func NewOffsetIndex(rowCount int64) *OffsetIndex {
	return &OffsetIndex{rowCount: rowCount}
}

// Add appends a page entry. Entries must arrive in page order, so FirstRow
// must be strictly greater than the previous entry's.
func (x *OffsetIndex) Add(e OffsetEntry) error {
	if n := len(x.entries); n > 0 && e.FirstRow <= x.entries[n-1].FirstRow {
		return fmt.Errorf("%w: first row %d does not advance past %d",
			errs.ErrInvalidArgument, e.FirstRow, x.entries[n-1].FirstRow)
	}
	x.entries = append(x.entries, e)

	return nil
}

// NumPages returns the number of page entries.
func (x *OffsetIndex) NumPages() int {
	return len(x.entries)
}

// RowCount returns the total number of rows the index covers.
func (x *OffsetIndex) RowCount() int64 {
	return x.rowCount
}

// Entry returns the i-th page entry.
func (x *OffsetIndex) Entry(i int) (OffsetEntry, error) {
	if i < 0 || i >= len(x.entries) {
		return OffsetEntry{}, fmt.Errorf("%w: page %d outside [0, %d)",
			errs.ErrOutOfBounds, i, len(x.entries))
	}

	return x.entries[i], nil
}

// AppendTo appends all entries to dst in page order and returns the extended
// slice.
func (x *OffsetIndex) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	for _, e := range x.entries {
		dst = e.AppendTo(dst, engine)
	}

	return dst
}

// ParseOffsetIndex decodes numPages entries from data. rowCount is the total
// row count of the column, taken from its metadata.
func ParseOffsetIndex(data []byte, numPages int, rowCount int64, engine endian.EndianEngine) (*OffsetIndex, error) {
	if numPages < 0 {
		return nil, fmt.Errorf("%w: negative page count %d", errs.ErrInvalidArgument, numPages)
	}
	if need := numPages * OffsetEntrySize; len(data) < need {
		return nil, fmt.Errorf("%w: %d pages need %d bytes, have %d",
			errs.ErrUnexpectedEOF, numPages, need, len(data))
	}

	x := NewOffsetIndex(rowCount)
	for i := 0; i < numPages; i++ {
		e, err := ParseOffsetEntry(data[i*OffsetEntrySize:], engine)
		if err != nil {
			return nil, err
		}
		if err := x.Add(e); err != nil {
			return nil, err
		}
	}

	return x, nil
}

// PageForRow returns the index of the page containing row. A row equal to a
// page's FirstRow resolves to that page; any other row resolves to the page
// whose row range covers it. Rows outside [0, RowCount()) fail with
// errs.ErrOutOfBounds.
func (x *OffsetIndex) PageForRow(row int) (int, error) {
	if len(x.entries) == 0 {
		return 0, fmt.Errorf("%w: offset index has no pages", errs.ErrEmptyData)
	}
	if row < 0 || int64(row) >= x.rowCount {
		return 0, fmt.Errorf("%w: row %d outside [0, %d)", errs.ErrOutOfBounds, row, x.rowCount)
	}

	idx, found, ok := search.Range(0, len(x.entries), uint32(row), func(i int) (uint32, bool) {
		if i < 0 || i >= len(x.entries) {
			return 0, false
		}

		return x.entries[i].FirstRow, true
	})
	if !ok {
		return 0, fmt.Errorf("%w: offset index probe failed", errs.ErrInvalidArgument)
	}
	if found {
		return idx, nil
	}
	if idx == 0 {
		return 0, fmt.Errorf("%w: row %d precedes the first page", errs.ErrOutOfBounds, row)
	}

	return idx - 1, nil
}
