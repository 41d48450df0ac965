package physical

import "unsafe"

// julianDayOfEpoch is the Julian day number of the Unix epoch, 1970-01-01.
const julianDayOfEpoch int64 = 2_440_588

const (
	secondsPerDay int64 = 86_400
	millisPerDay  int64 = secondsPerDay * 1_000
	microsPerDay  int64 = millisPerDay * 1_000
	nanosPerDay   int64 = microsPerDay * 1_000
)

// Int96 is the legacy 96-bit timestamp value: words 0 and 1 hold
// nanoseconds since midnight as a little-endian 64-bit quantity, word 2
// holds the Julian day number interpreted as a signed 32-bit count.
//
// Values order primarily by day and secondarily by position within the day.
// The epoch conversions wrap silently on int64 overflow.
type Int96 [3]uint32

// The in-memory size must be exactly 12 bytes with no padding; both
// declarations fail to compile otherwise.
var (
	_ [12 - unsafe.Sizeof(Int96{})]byte
	_ [unsafe.Sizeof(Int96{}) - 12]byte
)

// NewInt96 builds a value from its three raw words.
func NewInt96(words [3]uint32) Int96 {
	return Int96(words)
}

// SetWords replaces all three words.
func (i *Int96) SetWords(words [3]uint32) {
	*i = Int96(words)
}

// Words returns the raw word triple.
func (i Int96) Words() [3]uint32 {
	return [3]uint32(i)
}

// JulianDay returns the day word as a signed day count.
func (i Int96) JulianDay() int32 {
	return int32(i[2])
}

// NanosOfDay returns the nanoseconds-since-midnight quantity spanning the
// low two words.
func (i Int96) NanosOfDay() int64 {
	return (int64(i[1]) << 32) + int64(i[0])
}

// SecondsSinceEpoch converts the timestamp to seconds since the Unix epoch,
// wrapping silently on overflow.
func (i Int96) SecondsSinceEpoch() int64 {
	return (int64(i.JulianDay())-julianDayOfEpoch)*secondsPerDay + i.NanosOfDay()/1_000_000_000
}

// MillisSinceEpoch converts the timestamp to milliseconds since the Unix
// epoch, wrapping silently on overflow.
func (i Int96) MillisSinceEpoch() int64 {
	return (int64(i.JulianDay())-julianDayOfEpoch)*millisPerDay + i.NanosOfDay()/1_000_000
}

// MicrosSinceEpoch converts the timestamp to microseconds since the Unix
// epoch, wrapping silently on overflow.
func (i Int96) MicrosSinceEpoch() int64 {
	return (int64(i.JulianDay())-julianDayOfEpoch)*microsPerDay + i.NanosOfDay()/1_000
}

// NanosSinceEpoch converts the timestamp to nanoseconds since the Unix
// epoch, wrapping silently on overflow.
func (i Int96) NanosSinceEpoch() int64 {
	return (int64(i.JulianDay())-julianDayOfEpoch)*nanosPerDay + i.NanosOfDay()
}

// Compare orders timestamps by signed Julian day, then by nanoseconds
// within the day.
func (i Int96) Compare(other Int96) int {
	if d, od := i.JulianDay(), other.JulianDay(); d != od {
		if d < od {
			return -1
		}

		return 1
	}

	a, b := i.NanosOfDay(), other.NanosOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
