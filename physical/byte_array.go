package physical

import (
	"bytes"

	"github.com/arloliu/colenc/byteslice"
)

// emptySlice backs zero-length set values so a set ByteArray always carries
// a non-nil reference.
var emptySlice = []byte{}

// ByteArray is an optional reference to a shared immutable byte buffer.
//
// The zero value is unset, a distinct state from referencing an empty
// buffer. Storage accessors (Data, Len, IsEmpty, Slice, AsString) require
// the value to be set and panic otherwise: the panic marks a caller contract
// violation, not a recoverable condition. IsSet probes safely.
//
// Slice produces zero-copy sub-views sharing the backing buffer; the
// garbage collector keeps the buffer alive while any view remains
// reachable, so views never dangle. Buffers are immutable by convention:
// nothing in this module writes through a ByteArray after construction.
// Values are safe for concurrent reads once constructed.
type ByteArray struct {
	data []byte
}

// NewByteArray returns a set value referencing data without copying it.
func NewByteArray(data []byte) ByteArray {
	var b ByteArray
	b.SetData(data)

	return b
}

// ByteArrayFromString returns a set value holding the bytes of s.
func ByteArrayFromString(s string) ByteArray {
	return NewByteArray([]byte(s))
}

// SetData arms the value with data without copying it. A nil input arms an
// empty buffer, so the value is always set afterwards.
func (b *ByteArray) SetData(data []byte) {
	if data == nil {
		data = emptySlice
	}
	b.data = data
}

// IsSet reports whether data has been set.
func (b ByteArray) IsSet() bool {
	return b.data != nil
}

// Data returns the backing bytes. It panics when no data has been set.
func (b ByteArray) Data() []byte {
	b.mustBeSet()

	return b.data
}

// Len returns the byte length. It panics when no data has been set.
func (b ByteArray) Len() int {
	b.mustBeSet()

	return len(b.data)
}

// IsEmpty reports whether the buffer has zero length. It panics when no
// data has been set.
func (b ByteArray) IsEmpty() bool {
	b.mustBeSet()

	return len(b.data) == 0
}

// Slice returns the zero-copy sub-view [start, start+length) sharing the
// backing buffer. It panics when no data has been set; an out-of-range
// request panics with the runtime's bounds message.
func (b ByteArray) Slice(start, length int) ByteArray {
	b.mustBeSet()

	return NewByteArray(b.data[start : start+length])
}

// AsString returns the buffer as a UTF-8 string, failing with
// errs.ErrInvalidArgument on invalid data. It panics when no data has been
// set.
func (b ByteArray) AsString() (string, error) {
	b.mustBeSet()

	return byteslice.StringAtOffset(b.data, 0, 0, len(b.data))
}

// Equal reports content equality. Two unset values are equal; an unset
// value never equals a set one.
func (b ByteArray) Equal(other ByteArray) bool {
	if !b.IsSet() || !other.IsSet() {
		return b.IsSet() == other.IsSet()
	}

	return bytes.Equal(b.data, other.data)
}

// Compare orders unset before set, then set values lexicographically by
// content.
func (b ByteArray) Compare(other ByteArray) int {
	switch {
	case !b.IsSet() && !other.IsSet():
		return 0
	case !b.IsSet():
		return -1
	case !other.IsSet():
		return 1
	}

	return bytes.Compare(b.data, other.data)
}

// heapLen is HeapSize's view of the value: unset values own nothing.
func (b ByteArray) heapLen() int {
	return len(b.data)
}

func (b ByteArray) mustBeSet() {
	if b.data == nil {
		panic("physical: ByteArray data has not been set")
	}
}

// FixedLenByteArray is a nominal wrapper around ByteArray for values whose
// byte length is fixed by the column schema and therefore never written to
// the wire.
//
// It exists purely so encode and decode specialize per kind at generic
// instantiation time instead of branching on a runtime flag at every call
// site; storage behavior and runtime layout are ByteArray's.
type FixedLenByteArray struct {
	ByteArray
}

// NewFixedLenByteArray returns a set value referencing data without copying
// it.
func NewFixedLenByteArray(data []byte) FixedLenByteArray {
	return FixedLenByteArray{NewByteArray(data)}
}

// Slice returns the zero-copy sub-view [start, start+length) sharing the
// backing buffer.
func (f FixedLenByteArray) Slice(start, length int) FixedLenByteArray {
	return FixedLenByteArray{f.ByteArray.Slice(start, length)}
}

// Equal reports content equality with another fixed-length value.
func (f FixedLenByteArray) Equal(other FixedLenByteArray) bool {
	return f.ByteArray.Equal(other.ByteArray)
}

// Compare orders unset before set, then lexicographically by content.
func (f FixedLenByteArray) Compare(other FixedLenByteArray) int {
	return f.ByteArray.Compare(other.ByteArray)
}
