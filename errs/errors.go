// Package errs defines the sentinel errors shared by all colenc packages.
//
// Callers match them with errors.Is. Packages attach call-site detail by
// wrapping with the %w verb:
//
//	return fmt.Errorf("%w: range [%d:%d) exceeds length %d", errs.ErrOutOfBounds, start, end, n)
package errs

import "errors"

var (
	// ErrOutOfBounds reports an index or range beyond the valid extent of a
	// buffer or entry list.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrOverflow reports integer overflow in offset or length arithmetic.
	ErrOverflow = errors.New("integer overflow")

	// ErrInvalidArgument reports malformed input: invalid UTF-8, a bad
	// constructor parameter, or an out-of-range option value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnexpectedEOF reports a decode or skip request that needs more bytes
	// than the buffer still holds.
	ErrUnexpectedEOF = errors.New("unexpected end of data")

	// ErrTypeMismatch reports a conversion or append that the value's
	// physical kind does not support.
	ErrTypeMismatch = errors.New("physical type mismatch")

	// ErrInvalidKind reports a physical kind tag outside the supported set.
	ErrInvalidKind = errors.New("invalid physical kind")

	// ErrEmptyData reports an operation that requires at least one byte or
	// value but received none.
	ErrEmptyData = errors.New("empty data")

	// ErrClosed reports use of an encoder or writer after Close.
	ErrClosed = errors.New("already closed")
)
