package column

import (
	"github.com/arloliu/colenc/bloom"
	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/pageindex"
	"github.com/arloliu/colenc/stats"
)

// Column is a sealed, self-contained column: the paged payload plus the
// metadata needed to read and prune it. Writers produce it through Finish;
// it is immutable afterwards.
type Column struct {
	// Descriptor identifies the column.
	Descriptor Descriptor

	// Engine is the byte order of the page headers and index entries.
	Engine endian.EndianEngine

	// Payload holds the page frames back to back.
	Payload []byte

	// Pages locates each page frame inside Payload.
	Pages *pageindex.OffsetIndex

	// Bounds holds the per-page min/max entries. Entries are empty when
	// statistics collection was disabled.
	Bounds *pageindex.ColumnIndex

	// Stats is the whole-column statistics snapshot. It is zero-valued when
	// statistics collection was disabled.
	Stats stats.Statistics

	// BloomBytes is the marshaled bloom filter, empty when none was
	// configured.
	BloomBytes []byte

	// NumRows is the total number of values in the column.
	NumRows int64
}

// NumPages returns the number of pages in the column.
func (c *Column) NumPages() int {
	return c.Pages.NumPages()
}

// Bloom rehydrates the column's bloom filter. It returns (nil, nil) when the
// column carries none.
func (c *Column) Bloom() (*bloom.Filter, error) {
	if len(c.BloomBytes) == 0 {
		return nil, nil
	}

	return bloom.Unmarshal(c.BloomBytes)
}
