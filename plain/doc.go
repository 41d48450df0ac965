// Package plain implements the PLAIN encoding, the baseline binary layout
// for every physical kind: no compression, no dictionary, values laid out
// back to back.
//
// # Wire Layout
//
// Each kind has a fixed per-value layout:
//
//	Boolean            1 bit per value, packed LSB-first into bytes
//	Int32, Float       4 raw native-endian bytes
//	Int64, Double      8 raw native-endian bytes
//	Int96              12 raw bytes, three little-endian uint32 words
//	ByteArray          4-byte native-endian length prefix, then raw bytes
//	FixedLenByteArray  raw bytes only, width supplied by the schema
//
// Fixed-width batches move through a single bulk byte copy because their
// wire image equals their in-memory image. Int96 and the byte-array kinds
// go value by value, since their wire layout differs from memory layout.
//
// # Encoding
//
// Encode serializes one batch to an io.Writer; boolean batches go to a
// bitpack.Writer owned by the caller instead, so a page's bit stream can
// span multiple batches before it is sealed. Encoder wraps both sinks with
// a pooled buffer for the common build-a-page-in-memory case.
//
// # Decoding
//
// Decoder is a cursor over one encoded payload. Decode and Skip consume
// min(requested, remaining) values and fail with errs.ErrUnexpectedEOF when
// the payload is too short for that count; on failure the cursor keeps its
// prior position, so a caller can recover or report without losing its
// place. Decoded byte-array values are zero-copy views into the payload.
package plain
