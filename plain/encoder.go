package plain

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/colenc/bitpack"
	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/internal/cast"
	"github.com/arloliu/colenc/internal/pool"
	"github.com/arloliu/colenc/physical"
)

// Encode appends the PLAIN image of one homogeneous batch to w. Boolean
// batches go to bits instead, one bit per value; the caller seals the bit
// stream with bits.Flush once its final batch is in. bits is only
// consulted for boolean batches and may be nil otherwise. Encode fails
// only on sink write errors.
//
// Byte-array values must be set; a value longer than the 4-byte length
// prefix can describe is a caller contract violation and panics.
func Encode[T physical.Value](values []T, w io.Writer, bits *bitpack.Writer) error {
	switch physical.KindOf[T]() {
	case physical.KindBoolean:
		bits.PutBools(any(values).([]bool))

	case physical.KindInt32, physical.KindInt64, physical.KindFloat, physical.KindDouble:
		if _, err := w.Write(cast.SliceToBytes(values)); err != nil {
			return fmt.Errorf("failed to write fixed-width batch: %w", err)
		}

	case physical.KindInt96:
		var scratch [12]byte
		for _, v := range any(values).([]physical.Int96) {
			words := v.Words()
			binary.LittleEndian.PutUint32(scratch[0:4], words[0])
			binary.LittleEndian.PutUint32(scratch[4:8], words[1])
			binary.LittleEndian.PutUint32(scratch[8:12], words[2])
			if _, err := w.Write(scratch[:]); err != nil {
				return fmt.Errorf("failed to write Int96 value: %w", err)
			}
		}

	case physical.KindByteArray:
		ord := endian.NativeEngine()
		var prefix [4]byte
		for _, v := range any(values).([]physical.ByteArray) {
			size := v.Len()
			if uint64(size) > math.MaxUint32 {
				panic("plain: ByteArray length exceeds the uint32 prefix range")
			}
			ord.PutUint32(prefix[:], uint32(size))
			if _, err := w.Write(prefix[:]); err != nil {
				return fmt.Errorf("failed to write length prefix: %w", err)
			}
			if _, err := w.Write(v.Data()); err != nil {
				return fmt.Errorf("failed to write ByteArray value: %w", err)
			}
		}

	case physical.KindFixedLenByteArray:
		for _, v := range any(values).([]physical.FixedLenByteArray) {
			if _, err := w.Write(v.Data()); err != nil {
				return fmt.Errorf("failed to write FixedLenByteArray value: %w", err)
			}
		}
	}

	return nil
}

// Encoder accumulates PLAIN-encoded batches of one kind in a pooled
// buffer, for the common case of building a page in memory before framing
// it. The zero value is not usable; construct with NewEncoder and release
// with Close.
type Encoder[T physical.Value] struct {
	buf    *pool.ByteBuffer
	bits   *bitpack.Writer
	closed bool
}

// NewEncoder returns an empty encoder backed by a page buffer from the
// internal pool.
func NewEncoder[T physical.Value]() *Encoder[T] {
	return &Encoder[T]{
		buf:  pool.GetPageBuffer(),
		bits: bitpack.NewWriter(0),
	}
}

// Put appends the PLAIN image of values to the pending page.
func (e *Encoder[T]) Put(values []T) error {
	if e.closed {
		return errs.ErrClosed
	}

	return Encode(values, e.buf, e.bits)
}

// EstimatedSize returns the byte size the pending page would have if
// sealed now, counting any partial trailing byte of the bit stream.
func (e *Encoder[T]) EstimatedSize() int {
	return e.buf.Len() + (e.bits.BitCount()+7)/8
}

// FlushBuffer seals the pending page and returns its bytes as a fresh
// slice owned by the caller. The encoder is left empty, ready for the next
// page.
func (e *Encoder[T]) FlushBuffer() ([]byte, error) {
	if e.closed {
		return nil, errs.ErrClosed
	}

	e.sealBits()
	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())
	e.buf.Reset()

	return out, nil
}

// WriteTo seals the pending page, streams its bytes into w, and leaves the
// encoder empty. It implements io.WriterTo, so page bytes can land
// directly in a caller's buffer without an intermediate copy.
func (e *Encoder[T]) WriteTo(w io.Writer) (int64, error) {
	if e.closed {
		return 0, errs.ErrClosed
	}

	e.sealBits()
	n, err := e.buf.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("failed to write page bytes: %w", err)
	}
	e.buf.Reset()

	return n, nil
}

// Reset discards the pending page, keeping the encoder open and its
// buffers allocated.
func (e *Encoder[T]) Reset() {
	if e.closed {
		return
	}
	e.buf.Reset()
	e.bits.Reset()
}

// Close releases the pooled buffer. The encoder is unusable afterwards;
// Close is idempotent.
func (e *Encoder[T]) Close() {
	if e.closed {
		return
	}
	e.closed = true
	pool.PutPageBuffer(e.buf)
	e.buf = nil
}

// sealBits folds the buffered bit stream, zero-padded to a byte boundary,
// onto the end of the byte stream.
func (e *Encoder[T]) sealBits() {
	if e.bits.BitCount() == 0 {
		return
	}
	e.bits.Flush()
	e.buf.MustWrite(e.bits.Bytes())
	e.bits.Reset()
}
