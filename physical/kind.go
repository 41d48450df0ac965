package physical

// Kind identifies the wire-level physical storage type of a value.
//
// The zero value is invalid: factories and parsers reject it, so a Kind
// read from a header can be validated with Valid before use.
type Kind uint8

const (
	KindBoolean           Kind = 0x1 // KindBoolean is one bit per value, packed LSB-first.
	KindInt32             Kind = 0x2 // KindInt32 is 4 raw native-endian bytes per value.
	KindInt64             Kind = 0x3 // KindInt64 is 8 raw native-endian bytes per value.
	KindInt96             Kind = 0x4 // KindInt96 is 12 raw bytes per value, three little-endian uint32 words.
	KindFloat             Kind = 0x5 // KindFloat is 4 raw native-endian bytes per value.
	KindDouble            Kind = 0x6 // KindDouble is 8 raw native-endian bytes per value.
	KindByteArray         Kind = 0x7 // KindByteArray is a uint32 length prefix plus raw bytes per value.
	KindFixedLenByteArray Kind = 0x8 // KindFixedLenByteArray is raw bytes only; the length comes from the schema.
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "Boolean"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindInt96:
		return "Int96"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindByteArray:
		return "ByteArray"
	case KindFixedLenByteArray:
		return "FixedLenByteArray"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= KindBoolean && k <= KindFixedLenByteArray
}

// FixedWidth returns the in-memory width in bytes for kinds whose values
// occupy a fixed size, and 0 for the variable-length kinds.
func (k Kind) FixedWidth() int {
	switch k {
	case KindBoolean:
		return 1
	case KindInt32, KindFloat:
		return 4
	case KindInt64, KindDouble:
		return 8
	case KindInt96:
		return 12
	default:
		return 0
	}
}
