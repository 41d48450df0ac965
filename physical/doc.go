// Package physical defines the closed set of wire-level value types the
// codec layer operates on, together with the capability functions every
// higher layer uses to treat them uniformly.
//
// # Kinds and Value Types
//
// Eight physical kinds exist, fixed by the wire rules:
//
//   - KindBoolean: bool, bit-packed on the wire
//   - KindInt32 / KindInt64: int32 / int64, raw native-endian bytes
//   - KindFloat / KindDouble: float32 / float64, raw native-endian bytes
//   - KindInt96: Int96, a legacy 96-bit timestamp (Julian day + nanos of day)
//   - KindByteArray: ByteArray, length-prefixed variable bytes
//   - KindFixedLenByteArray: FixedLenByteArray, raw bytes of schema-fixed length
//
// The Value constraint names exactly these in-memory types. Generic code
// instantiates per member; the set cannot be widened from outside the
// package, which keeps every codec dispatch exhaustive.
//
// # Capability Functions
//
// Statistics, dictionary encoding, and index layers consume values through
// the package-level generics instead of switching on kinds themselves:
//
//   - KindOf: wire tag of an instantiation
//   - Compare: per-kind ordering (min/max collection, index pruning)
//   - AsInt64 / AsUint64: integer views where the kind defines one
//   - HeapSize: owned heap bytes for memory accounting
//   - DictEncodingSize: per-value contribution to a dictionary's size
//   - VariableLengthTotal: summed payload lengths of a variable-width batch
//
// # Contract Violations
//
// Recoverable conditions return errors. Accessing the storage of an unset
// ByteArray is not recoverable: it panics, the same way an out-of-range
// slice index does, because it means the caller skipped the arming step its
// own contract requires.
package physical
