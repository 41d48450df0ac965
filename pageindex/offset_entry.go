package pageindex

import (
	"fmt"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
)

// OffsetEntrySize is the fixed wire size of one offset index entry in bytes.
const OffsetEntrySize = 12

// OffsetEntry locates a single page inside a column payload.
// It is a fixed size of 12 bytes on the wire.
type OffsetEntry struct {
	// Offset is the byte offset of the page, header included, from the start
	// of the column payload.
	//
	// Offset: 0, Size: 4 bytes
	Offset uint32

	// ByteLen is the encoded byte length of the page, header included.
	//
	// Offset: 4, Size: 4 bytes
	ByteLen uint32

	// FirstRow is the row number of the first value stored in the page.
	// Entries in an index are ordered by this field.
	//
	// Offset: 8, Size: 4 bytes
	FirstRow uint32
}

// Bytes returns the entry encoded with the given engine. The returned slice
// is a fresh allocation.
func (e OffsetEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [OffsetEntrySize]byte
	engine.PutUint32(b[0:4], e.Offset)
	engine.PutUint32(b[4:8], e.ByteLen)
	engine.PutUint32(b[8:12], e.FirstRow)

	return b[:]
}

// AppendTo appends the encoded entry to dst and returns the extended slice.
func (e OffsetEntry) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, e.Offset)
	dst = engine.AppendUint32(dst, e.ByteLen)
	dst = engine.AppendUint32(dst, e.FirstRow)

	return dst
}

// ParseOffsetEntry decodes one entry from the start of data.
func ParseOffsetEntry(data []byte, engine endian.EndianEngine) (OffsetEntry, error) {
	if len(data) < OffsetEntrySize {
		return OffsetEntry{}, fmt.Errorf("%w: offset entry needs %d bytes, have %d",
			errs.ErrUnexpectedEOF, OffsetEntrySize, len(data))
	}

	return OffsetEntry{
		Offset:   engine.Uint32(data[0:4]),
		ByteLen:  engine.Uint32(data[4:8]),
		FirstRow: engine.Uint32(data[8:12]),
	}, nil
}
