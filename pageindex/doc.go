// Package pageindex defines the per-column page index structures: the offset
// index that locates each page inside a column payload, and the column index
// that records per-page min/max bounds for predicate pruning.
//
// # Offset Index
//
// One fixed-size entry per page, stored back to back:
//
//	┌────────────────────────────────────────────┐
//	│ Offset   (4 bytes): page start in payload  │
//	│ ByteLen  (4 bytes): encoded page length    │
//	│ FirstRow (4 bytes): row of the first value │
//	└────────────────────────────────────────────┘
//
// Entries are ordered by FirstRow, so PageForRow resolves a row number to
// its page with a binary search over the FirstRow keys.
//
// # Column Index
//
// One variable-size entry per page:
//
//	┌────────────────────────────────────────────┐
//	│ MinLen (2 bytes)                           │
//	│ MaxLen (2 bytes)                           │
//	│ Min    (MinLen bytes, wire image)          │
//	│ Max    (MaxLen bytes, wire image)          │
//	└────────────────────────────────────────────┘
//
// Min and Max carry the wire byte images produced by stats.Statistics. Both
// lengths are zero when a page recorded no bounds, either because every
// value was NaN or because a bound exceeded the uint16 length range.
//
// Byte order for all multi-byte fields comes from the endian.EndianEngine
// passed to AppendTo and the Parse functions.
package pageindex
