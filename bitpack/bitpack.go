// Package bitpack provides bit-level writing and reading over byte slices,
// LSB-first within each byte.
//
// The boolean PLAIN layout stores one bit per value, least-significant bit
// first: the first value lands in bit 0 of byte 0, the ninth value in bit 0
// of byte 1. Writer and Reader both use a 64-bit accumulator with a fast
// path for full 8-byte transfers, so batch operations touch memory one word
// at a time.
package bitpack

import "encoding/binary"

// Writer accumulates bits LSB-first and appends them to an internal byte
// buffer. The zero value is ready for use.
type Writer struct {
	buf      []byte
	bitBuf   uint64 // pending bits, bit 0 is the oldest
	bitCount int    // number of valid bits in bitBuf
}

// NewWriter creates a writer with capacity for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Put appends a single bit.
func (w *Writer) Put(v bool) {
	if v {
		w.bitBuf |= 1 << w.bitCount
	}
	w.bitCount++

	if w.bitCount == 64 {
		w.flushBits()
	}
}

// PutValue appends the width least-significant bits of v, lowest bit first.
// width must be in [0, 64]; wider bits of v are ignored.
func (w *Writer) PutValue(v uint64, width uint) {
	if width == 0 {
		return
	}
	if width < 64 {
		v &= (1 << width) - 1
	}

	available := uint(64 - w.bitCount)
	if width <= available {
		w.bitBuf |= v << w.bitCount
		w.bitCount += int(width)

		if w.bitCount == 64 {
			w.flushBits()
		}

		return
	}

	// Split across the accumulator boundary: low bits complete the current
	// word, high bits start the next one.
	w.bitBuf |= v << w.bitCount
	w.bitCount = 64
	w.flushBits()

	w.bitBuf = v >> available
	w.bitCount = int(width - available)
}

// PutBools appends each value as one bit.
func (w *Writer) PutBools(values []bool) {
	for _, v := range values {
		w.Put(v)
	}
}

// Flush pads the trailing partial byte with zero bits and moves all pending
// bits into the byte buffer. Call it once after the final Put; flushing
// mid-stream would insert padding inside the bit stream.
func (w *Writer) Flush() {
	w.flushBits()
}

// Bytes returns the flushed byte buffer. Pending unflushed bits are not
// included; call Flush first to seal the stream.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// BitCount returns the total number of bits written since the last Reset,
// including bits still sitting in the accumulator.
func (w *Writer) BitCount() int {
	return len(w.buf)*8 + w.bitCount
}

// Len returns the number of flushed bytes.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reset clears the writer for reuse, retaining the allocated buffer.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.bitBuf = 0
	w.bitCount = 0
}

// flushBits drains the accumulator into the byte buffer, LSB byte first.
func (w *Writer) flushBits() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8

	// Fast path: full accumulator becomes one little-endian word.
	if numBytes == 8 {
		w.buf = binary.LittleEndian.AppendUint64(w.buf, w.bitBuf)
	} else {
		for i := 0; i < numBytes; i++ {
			w.buf = append(w.buf, byte(w.bitBuf>>(8*i)))
		}
	}

	w.bitBuf = 0
	w.bitCount = 0
}

// Reader extracts bits LSB-first from a byte slice.
//
// The batch helpers stop at the end of the data and report how many values
// they consumed; callers that need all-or-nothing semantics check
// RemainingBits before reading.
type Reader struct {
	data     []byte
	bytePos  int
	bitBuf   uint64 // buffered bits, bit 0 is the next to read
	bitCount int
}

// NewReader creates a reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Reset re-arms the reader over new data.
func (r *Reader) Reset(data []byte) {
	r.data = data
	r.bytePos = 0
	r.bitBuf = 0
	r.bitCount = 0
}

// RemainingBits returns the number of unread bits.
func (r *Reader) RemainingBits() int {
	return r.bitCount + (len(r.data)-r.bytePos)*8
}

// GetBool reads one bit. The second result is false when the data is
// exhausted.
func (r *Reader) GetBool() (bool, bool) {
	if r.bitCount == 0 {
		if !r.fillBuffer() {
			return false, false
		}
	}

	bit := r.bitBuf & 1
	r.bitBuf >>= 1
	r.bitCount--

	return bit == 1, true
}

// GetValue reads the next width bits, lowest bit first, right-aligned in the
// result. width must be in [0, 64].
func (r *Reader) GetValue(width uint) (uint64, bool) {
	if width == 0 {
		return 0, true
	}

	if int(width) <= r.bitCount {
		var result uint64
		if width < 64 {
			result = r.bitBuf & ((1 << width) - 1)
			r.bitBuf >>= width
		} else {
			result = r.bitBuf
			r.bitBuf = 0
		}
		r.bitCount -= int(width)

		return result, true
	}

	if r.RemainingBits() < int(width) {
		return 0, false
	}

	var result uint64
	read := uint(0)

	for read < width {
		if r.bitCount == 0 && !r.fillBuffer() {
			return 0, false
		}

		chunk := width - read
		if int(chunk) > r.bitCount {
			chunk = uint(r.bitCount)
		}

		var bits uint64
		if chunk < 64 {
			bits = r.bitBuf & ((1 << chunk) - 1)
			r.bitBuf >>= chunk
		} else {
			bits = r.bitBuf
			r.bitBuf = 0
		}
		r.bitCount -= int(chunk)

		result |= bits << read
		read += chunk
	}

	return result, true
}

// GetBools fills out with one bit per element and returns the number of
// values read, which is less than len(out) when the data runs out first.
func (r *Reader) GetBools(out []bool) int {
	for i := range out {
		v, ok := r.GetBool()
		if !ok {
			return i
		}
		out[i] = v
	}

	return len(out)
}

// SkipBools advances past n single-bit values and returns the number
// actually skipped.
func (r *Reader) SkipBools(n int) int {
	if n <= 0 {
		return 0
	}

	remaining := r.RemainingBits()
	if n > remaining {
		n = remaining
	}

	left := n

	// Drain the accumulator first.
	if left <= r.bitCount {
		r.bitBuf >>= left
		r.bitCount -= left

		return n
	}
	left -= r.bitCount
	r.bitBuf = 0
	r.bitCount = 0

	// Jump whole bytes without touching the accumulator.
	wholeBytes := left / 8
	r.bytePos += wholeBytes
	left -= wholeBytes * 8

	for left > 0 {
		if !r.fillBuffer() {
			break
		}
		chunk := left
		if chunk > r.bitCount {
			chunk = r.bitCount
		}
		r.bitBuf >>= chunk
		r.bitCount -= chunk
		left -= chunk
	}

	return n
}

// fillBuffer refills the accumulator from the byte stream, up to 8 bytes at
// a time with a little-endian fast path.
func (r *Reader) fillBuffer() bool {
	if r.bytePos >= len(r.data) {
		return false
	}

	bytesAvailable := len(r.data) - r.bytePos
	if bytesAvailable >= 8 {
		r.bitBuf = binary.LittleEndian.Uint64(r.data[r.bytePos : r.bytePos+8])
		r.bytePos += 8
		r.bitCount = 64

		return true
	}

	r.bitBuf = 0
	for i := 0; i < bytesAvailable; i++ {
		r.bitBuf |= uint64(r.data[r.bytePos]) << (8 * i)
		r.bytePos++
	}
	r.bitCount = bytesAvailable * 8

	return true
}
