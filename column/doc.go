// Package column assembles physical values into paged column payloads and
// reads them back.
//
// A column payload is a sequence of page frames, each a fixed 12-byte header
// followed by the PLAIN-encoded values of that page:
//
//	┌─────────────────────────────────────────────┐
//	│ Page 0: Header (12 bytes)                   │
//	│  - NumValues (4 bytes)                      │
//	│  - ByteLen   (4 bytes): payload that follows│
//	│  - FirstRow  (4 bytes)                      │
//	├─────────────────────────────────────────────┤
//	│ Page 0: PLAIN payload (ByteLen bytes)       │
//	├─────────────────────────────────────────────┤
//	│ Page 1: Header + payload                    │
//	│ ...                                         │
//	└─────────────────────────────────────────────┘
//
// Headers and index entries use a configurable endian.EndianEngine,
// little-endian by default. The PLAIN payload itself keeps the wire table's
// native-endian layout.
//
// Writer appends values, rolls pages over at the configured value and byte
// thresholds, and collects per-page and per-column statistics, offset and
// column index entries, and an optional bloom filter. Finish seals the last
// page and returns the assembled Column. Reader decodes one page per call,
// or the whole column, resolving pages by row number through the offset
// index.
//
// The Builder interface erases the value type so schema-driven callers can
// construct writers from a Descriptor alone and append dynamically typed
// values; callers that know the value type downcast to *Writer[T].
package column
