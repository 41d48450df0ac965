package physical

import (
	"bytes"
	"encoding/binary"
)

// decimalBacking selects which storage variant a Decimal carries.
type decimalBacking uint8

const (
	backingInt32 decimalBacking = iota + 1
	backingInt64
	backingBytes
)

// Decimal is an exact numeric value with a fixed precision and scale,
// stored as a two's complement big-endian integer in one of three backings:
// a 4-byte integer, an 8-byte integer, or an arbitrary-width byte buffer.
//
// The backing is a storage detail: two values with equal precision, scale,
// and big-endian bytes are equal regardless of which backing holds them.
// The zero Decimal is uninitialized and Data panics on it.
type Decimal struct {
	backing   decimalBacking
	precision int32
	scale     int32
	i32       [4]byte
	i64       [8]byte
	bytes     ByteArray
}

// DecimalFromInt32 returns a Decimal backed by the two's complement
// big-endian image of value.
func DecimalFromInt32(value int32, precision, scale int32) Decimal {
	d := Decimal{backing: backingInt32, precision: precision, scale: scale}
	binary.BigEndian.PutUint32(d.i32[:], uint32(value))

	return d
}

// DecimalFromInt64 returns a Decimal backed by the two's complement
// big-endian image of value.
func DecimalFromInt64(value int64, precision, scale int32) Decimal {
	d := Decimal{backing: backingInt64, precision: precision, scale: scale}
	binary.BigEndian.PutUint64(d.i64[:], uint64(value))

	return d
}

// DecimalFromBytes returns a Decimal backed by value, interpreted as a
// two's complement big-endian integer of arbitrary width. The buffer is
// referenced without copying.
func DecimalFromBytes(value ByteArray, precision, scale int32) Decimal {
	return Decimal{backing: backingBytes, precision: precision, scale: scale, bytes: value}
}

// Precision returns the total number of significant digits.
func (d Decimal) Precision() int32 {
	return d.precision
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int32 {
	return d.scale
}

// Data returns the two's complement big-endian bytes of the unscaled
// integer. It panics on an uninitialized Decimal, and for a bytes-backed
// value whose buffer was never set.
func (d Decimal) Data() []byte {
	switch d.backing {
	case backingInt32:
		return d.i32[:]
	case backingInt64:
		return d.i64[:]
	case backingBytes:
		return d.bytes.Data()
	default:
		panic("physical: Decimal value is uninitialized")
	}
}

// Equal reports whether both values have the same precision, scale, and
// big-endian bytes. The backing variant does not participate: an int32
// backing and a 4-byte buffer backing holding the same image are equal.
func (d Decimal) Equal(other Decimal) bool {
	return d.precision == other.precision &&
		d.scale == other.scale &&
		bytes.Equal(d.Data(), other.Data())
}
