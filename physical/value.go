package physical

import (
	"cmp"
	"fmt"

	"github.com/arloliu/colenc/errs"
)

// Value constrains the Go representations of the eight physical kinds.
//
// The set is closed: the wire format defines exactly these kinds, and the
// codec's exhaustiveness rests on callers being unable to add more. Generic
// functions in this module dispatch on the concrete type at instantiation
// time, so per-kind behavior is selected once per instantiation rather than
// per value.
type Value interface {
	bool | int32 | int64 | Int96 | float32 | float64 | ByteArray | FixedLenByteArray
}

// KindOf returns the physical kind of the instantiated value type.
func KindOf[T Value]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBoolean
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case Int96:
		return KindInt96
	case float32:
		return KindFloat
	case float64:
		return KindDouble
	case ByteArray:
		return KindByteArray
	case FixedLenByteArray:
		return KindFixedLenByteArray
	default:
		panic("physical: unhandled value type")
	}
}

// AsInt64 converts v to an int64. Only boolean, int32, and int64 values
// convert; every other kind fails with errs.ErrTypeMismatch. Booleans map
// to 0 and 1.
func AsInt64[T Value](v T) (int64, error) {
	switch x := any(v).(type) {
	case bool:
		if x {
			return 1, nil
		}

		return 0, nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	default:
		return 0, fmt.Errorf("%w: %s cannot be converted to int64", errs.ErrTypeMismatch, KindOf[T]())
	}
}

// AsUint64 converts v to a uint64 by reinterpreting the AsInt64 result, so
// negative inputs wrap to their two's complement image. Kinds that cannot
// convert fail with errs.ErrTypeMismatch.
func AsUint64[T Value](v T) (uint64, error) {
	x, err := AsInt64(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s cannot be converted to uint64", errs.ErrTypeMismatch, KindOf[T]())
	}

	return uint64(x), nil
}

// HeapSize estimates the heap bytes v owns beyond its inline
// representation: zero for fixed-width kinds, the referenced buffer length
// for byte-array kinds. Shared buffers are counted once per referencing
// value, so a total over overlapping views can overstate real usage. Unset
// byte arrays own nothing and report zero.
func HeapSize[T Value](v T) int {
	switch x := any(v).(type) {
	case ByteArray:
		return x.heapLen()
	case FixedLenByteArray:
		return x.heapLen()
	default:
		return 0
	}
}

// DictEncodingSize reports the dictionary footprint of a single value as a
// (width, count) pair: the native width with a count of one for fixed-width
// kinds, and the 4-byte length-prefix width with the buffer length as count
// for byte-array kinds. Byte-array values must be set.
func DictEncodingSize[T Value](v T) (width, count int) {
	switch x := any(v).(type) {
	case ByteArray:
		return 4, x.Len()
	case FixedLenByteArray:
		return 4, x.Len()
	default:
		return KindOf[T]().FixedWidth(), 1
	}
}

// VariableLengthTotal sums the buffer lengths of values for the one kind
// that stores a per-value length on the wire. It reports ok=false for all
// fixed-width kinds, including fixed-length byte arrays whose width lives
// in the schema rather than the data. Every element must be set.
func VariableLengthTotal[T Value](values []T) (total int64, ok bool) {
	arrays, variable := any(values).([]ByteArray)
	if !variable {
		return 0, false
	}

	var sum int64
	for _, a := range arrays {
		sum += int64(a.Len())
	}

	return sum, true
}

// Compare orders two values of the same kind: booleans false before true,
// integers and Int96 numerically, floats by numeric order with 0 for any
// comparison involving NaN, byte arrays with unset before set and set
// values lexicographic.
func Compare[T Value](a, b T) int {
	switch x := any(a).(type) {
	case bool:
		y := any(b).(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case int32:
		return cmp.Compare(x, any(b).(int32))
	case int64:
		return cmp.Compare(x, any(b).(int64))
	case Int96:
		return x.Compare(any(b).(Int96))
	case float32:
		return compareFloat(float64(x), float64(any(b).(float32)))
	case float64:
		return compareFloat(x, any(b).(float64))
	case ByteArray:
		return x.Compare(any(b).(ByteArray))
	case FixedLenByteArray:
		return x.Compare(any(b).(FixedLenByteArray))
	default:
		panic("physical: unhandled value type")
	}
}

// compareFloat reports 0 for equal operands and for any comparison
// involving NaN, avoiding a total order that would rank NaN against real
// numbers.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
