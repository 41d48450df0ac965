package column

import (
	"fmt"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
)

// PageHeaderSize is the fixed wire size of a page header in bytes.
const PageHeaderSize = 12

// PageHeader prefixes every page frame in a column payload.
// It is a fixed size of 12 bytes.
type PageHeader struct {
	// NumValues is the number of values encoded in the page.
	//
	// Offset: 0, Size: 4 bytes
	NumValues uint32

	// ByteLen is the byte length of the PLAIN payload following the header.
	// It does not include the header itself.
	//
	// Offset: 4, Size: 4 bytes
	ByteLen uint32

	// FirstRow is the row number of the first value in the page.
	//
	// Offset: 8, Size: 4 bytes
	FirstRow uint32
}

// Bytes returns the header encoded with the given engine. The returned
// slice is a fresh allocation.
func (h PageHeader) Bytes(engine endian.EndianEngine) []byte {
	var b [PageHeaderSize]byte
	engine.PutUint32(b[0:4], h.NumValues)
	engine.PutUint32(b[4:8], h.ByteLen)
	engine.PutUint32(b[8:12], h.FirstRow)

	return b[:]
}

// AppendTo appends the encoded header to dst and returns the extended slice.
func (h PageHeader) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint32(dst, h.NumValues)
	dst = engine.AppendUint32(dst, h.ByteLen)
	dst = engine.AppendUint32(dst, h.FirstRow)

	return dst
}

// WriteToSlice writes the header into a pre-allocated slice at offset and
// returns the next write position. The slice must have PageHeaderSize bytes
// of room at offset.
func (h PageHeader) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint32(data[offset:offset+4], h.NumValues)
	engine.PutUint32(data[offset+4:offset+8], h.ByteLen)
	engine.PutUint32(data[offset+8:offset+12], h.FirstRow)

	return offset + PageHeaderSize
}

// ParsePageHeader decodes a header from the start of data.
func ParsePageHeader(data []byte, engine endian.EndianEngine) (PageHeader, error) {
	if len(data) < PageHeaderSize {
		return PageHeader{}, fmt.Errorf("%w: page header needs %d bytes, have %d",
			errs.ErrUnexpectedEOF, PageHeaderSize, len(data))
	}

	return PageHeader{
		NumValues: engine.Uint32(data[0:4]),
		ByteLen:   engine.Uint32(data[4:8]),
		FirstRow:  engine.Uint32(data[8:12]),
	}, nil
}
