package plain

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/physical"
)

// AppendRaw appends the bare wire image of one value to dst and returns
// the extended slice. The image matches the value's PLAIN layout with no
// framing: scalars are written native-endian, Int96 contributes its three
// little-endian words, and byte arrays contribute their payload without a
// length prefix. Booleans have no standalone wire byte, so they widen to a
// single 0 or 1. Within one kind the image is unique per value, which is
// what dictionary hashing and content equality need.
//
// Byte-array values must be set.
func AppendRaw[T physical.Value](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case bool:
		if x {
			return append(dst, 1)
		}

		return append(dst, 0)
	case int32:
		return endian.NativeEngine().AppendUint32(dst, uint32(x))
	case int64:
		return endian.NativeEngine().AppendUint64(dst, uint64(x))
	case physical.Int96:
		words := x.Words()
		dst = binary.LittleEndian.AppendUint32(dst, words[0])
		dst = binary.LittleEndian.AppendUint32(dst, words[1])

		return binary.LittleEndian.AppendUint32(dst, words[2])
	case float32:
		return endian.NativeEngine().AppendUint32(dst, math.Float32bits(x))
	case float64:
		return endian.NativeEngine().AppendUint64(dst, math.Float64bits(x))
	case physical.ByteArray:
		return append(dst, x.Data()...)
	case physical.FixedLenByteArray:
		return append(dst, x.Data()...)
	default:
		panic("plain: unhandled value type")
	}
}
