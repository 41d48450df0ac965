package pageindex

import (
	"fmt"
	"math"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/stats"
)

// columnIndexEntryHeaderSize is the fixed prefix of one column index entry:
// two uint16 lengths before the variable min/max tail.
const columnIndexEntryHeaderSize = 4

// ColumnIndexEntry records the value bounds of one page. Min and Max hold
// wire byte images as produced by stats.Statistics; both are empty with zero
// lengths when the page recorded no bounds.
type ColumnIndexEntry struct {
	// MinLen is the byte length of Min.
	//
	// Offset: 0, Size: 2 bytes
	MinLen uint16

	// MaxLen is the byte length of Max.
	//
	// Offset: 2, Size: 2 bytes
	MaxLen uint16

	// Min is the wire image of the smallest value in the page.
	//
	// Offset: 4, Size: MinLen bytes
	Min []byte

	// Max is the wire image of the largest value in the page.
	//
	// Offset: 4 + MinLen, Size: MaxLen bytes
	Max []byte
}

// AppendTo appends the encoded entry to dst and returns the extended slice.
func (e ColumnIndexEntry) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint16(dst, e.MinLen)
	dst = engine.AppendUint16(dst, e.MaxLen)
	dst = append(dst, e.Min...)
	dst = append(dst, e.Max...)

	return dst
}

// ParseColumnIndexEntry decodes one entry from the start of data and returns
// it with the number of bytes consumed. Min and Max alias data.
func ParseColumnIndexEntry(data []byte, engine endian.EndianEngine) (ColumnIndexEntry, int, error) {
	if len(data) < columnIndexEntryHeaderSize {
		return ColumnIndexEntry{}, 0, fmt.Errorf("%w: column index entry needs %d header bytes, have %d",
			errs.ErrUnexpectedEOF, columnIndexEntryHeaderSize, len(data))
	}

	e := ColumnIndexEntry{
		MinLen: engine.Uint16(data[0:2]),
		MaxLen: engine.Uint16(data[2:4]),
	}
	end := columnIndexEntryHeaderSize + int(e.MinLen) + int(e.MaxLen)
	if len(data) < end {
		return ColumnIndexEntry{}, 0, fmt.Errorf("%w: column index entry needs %d bytes, have %d",
			errs.ErrUnexpectedEOF, end, len(data))
	}
	e.Min = data[columnIndexEntryHeaderSize : columnIndexEntryHeaderSize+int(e.MinLen)]
	e.Max = data[columnIndexEntryHeaderSize+int(e.MinLen) : end]

	return e, end, nil
}

// ColumnIndex holds the per-page value bounds of one column in page order.
type ColumnIndex struct {
	entries []ColumnIndexEntry
}

// AddFromStats derives the next page's entry from a statistics snapshot.
// Pages without recorded bounds, and bounds longer than the uint16 length
// range, produce an entry with empty min and max.
func (x *ColumnIndex) AddFromStats(s stats.Statistics) {
	var e ColumnIndexEntry
	if s.MinSet && s.MaxSet && len(s.MinBytes) <= math.MaxUint16 && len(s.MaxBytes) <= math.MaxUint16 {
		e = ColumnIndexEntry{
			MinLen: uint16(len(s.MinBytes)),
			MaxLen: uint16(len(s.MaxBytes)),
			Min:    s.MinBytes,
			Max:    s.MaxBytes,
		}
	}
	x.entries = append(x.entries, e)
}

// NumPages returns the number of page entries.
func (x *ColumnIndex) NumPages() int {
	return len(x.entries)
}

// PageMin returns the wire image of page i's smallest value. The result is
// empty when the page recorded no bounds.
func (x *ColumnIndex) PageMin(i int) ([]byte, error) {
	e, err := x.entry(i)
	if err != nil {
		return nil, err
	}

	return e.Min, nil
}

// PageMax returns the wire image of page i's largest value. The result is
// empty when the page recorded no bounds.
func (x *ColumnIndex) PageMax(i int) ([]byte, error) {
	e, err := x.entry(i)
	if err != nil {
		return nil, err
	}

	return e.Max, nil
}

func (x *ColumnIndex) entry(i int) (ColumnIndexEntry, error) {
	if i < 0 || i >= len(x.entries) {
		return ColumnIndexEntry{}, fmt.Errorf("%w: page %d outside [0, %d)",
			errs.ErrOutOfBounds, i, len(x.entries))
	}

	return x.entries[i], nil
}

// AppendTo appends all entries to dst in page order and returns the extended
// slice.
func (x *ColumnIndex) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	for _, e := range x.entries {
		dst = e.AppendTo(dst, engine)
	}

	return dst
}

// ParseColumnIndex decodes numPages entries from data. Entry min/max slices
// alias data.
func ParseColumnIndex(data []byte, numPages int, engine endian.EndianEngine) (*ColumnIndex, error) {
	if numPages < 0 {
		return nil, fmt.Errorf("%w: negative page count %d", errs.ErrInvalidArgument, numPages)
	}

	x := &ColumnIndex{entries: make([]ColumnIndexEntry, 0, numPages)}
	pos := 0
	for i := 0; i < numPages; i++ {
		e, n, err := ParseColumnIndexEntry(data[pos:], engine)
		if err != nil {
			return nil, err
		}
		x.entries = append(x.entries, e)
		pos += n
	}

	return x, nil
}
