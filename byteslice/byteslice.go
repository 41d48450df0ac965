// Package byteslice provides bounds- and overflow-checked views over byte
// buffers.
//
// Every function returns an error instead of panicking when the requested
// view does not fit: errs.ErrOutOfBounds when an index or range exceeds the
// buffer, errs.ErrOverflow when offset arithmetic wraps the platform int.
// The two conditions stay distinct so callers on 32-bit targets can tell a
// wrapped offset from a merely out-of-range one.
//
// Successful slice results alias the input buffer; no bytes are copied.
package byteslice

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/colenc/errs"
)

// Slice returns the sub-slice b[start:end].
//
// Parameters:
//   - b: source buffer
//   - start: inclusive start index
//   - end: exclusive end index
//
// Returns:
//   - []byte: view aliasing b with length end-start
//   - error: errs.ErrOutOfBounds when start < 0, start > end, or end > len(b)
func Slice(b []byte, start, end int) ([]byte, error) {
	if start < 0 || start > end || end > len(b) {
		return nil, fmt.Errorf("%w: tried to extract bytes [%d:%d) from %d-byte buffer",
			errs.ErrOutOfBounds, start, end, len(b))
	}

	return b[start:end], nil
}

// At returns the byte at index i.
func At(b []byte, i int) (byte, error) {
	if i < 0 || i >= len(b) {
		return 0, fmt.Errorf("%w: tried to read byte %d from %d-byte buffer",
			errs.ErrOutOfBounds, i, len(b))
	}

	return b[i], nil
}

// FirstByte returns b[0], failing with errs.ErrOutOfBounds on an empty
// buffer.
func FirstByte(b []byte) (byte, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("%w: tried to read the first byte of an empty buffer", errs.ErrOutOfBounds)
	}

	return b[0], nil
}

// SliceAtOffset returns b[base+start : base+end] with both additions checked
// for overflow.
//
// Returns:
//   - []byte: view aliasing b
//   - error: errs.ErrOverflow when base+start or base+end overflows int,
//     errs.ErrOutOfBounds when the resolved range exceeds the buffer
func SliceAtOffset(b []byte, base, start, end int) ([]byte, error) {
	lo, ok := checkedAdd(base, start)
	if !ok {
		return nil, fmt.Errorf("%w: offset %d + %d overflows int", errs.ErrOverflow, base, start)
	}

	hi, ok := checkedAdd(base, end)
	if !ok {
		return nil, fmt.Errorf("%w: offset %d + %d overflows int", errs.ErrOverflow, base, end)
	}

	return Slice(b, lo, hi)
}

// StringAtOffset returns the UTF-8 string spanning b[base+start : base+end].
//
// Validation runs over the whole span in one pass; only when it fails does a
// second scan locate the offending byte for the error message. Both paths
// accept and reject exactly the same inputs.
//
// Returns:
//   - string: copy of the validated span
//   - error: errs.ErrOverflow / errs.ErrOutOfBounds from slicing, or
//     errs.ErrInvalidArgument carrying the position of the first invalid
//     UTF-8 sequence
func StringAtOffset(b []byte, base, start, end int) (string, error) {
	s, err := SliceAtOffset(b, base, start, end)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(s) {
		return "", fmt.Errorf("%w: invalid UTF-8 sequence at byte %d", errs.ErrInvalidArgument, invalidUTF8Pos(s))
	}

	return string(s), nil
}

// Array4 extracts the 4 bytes at b[off:off+4] as a fixed-size array for
// fixed-width field parsing.
func Array4(b []byte, off int) ([4]byte, error) {
	s, err := SliceAtOffset(b, off, 0, 4)
	if err != nil {
		return [4]byte{}, err
	}

	return [4]byte(s), nil
}

// Array8 extracts the 8 bytes at b[off:off+8] as a fixed-size array.
func Array8(b []byte, off int) ([8]byte, error) {
	s, err := SliceAtOffset(b, off, 0, 8)
	if err != nil {
		return [8]byte{}, err
	}

	return [8]byte(s), nil
}

// checkedAdd returns a+b and reports whether the addition stayed within int.
func checkedAdd(a, b int) (int, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// invalidUTF8Pos returns the index of the first byte that does not begin a
// valid UTF-8 sequence. Only called after utf8.Valid returned false.
func invalidUTF8Pos(s []byte) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRune(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}

	return len(s)
}
