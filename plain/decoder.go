package plain

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/colenc/bitpack"
	"github.com/arloliu/colenc/byteslice"
	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/internal/cast"
	"github.com/arloliu/colenc/physical"
)

// Decoder is a cursor over one PLAIN-encoded payload of values of type T.
//
// A zero-valued Decoder is not ready; construct with NewDecoder, then arm
// it with SetData. The same Decoder can be re-armed for successive payloads
// of the same kind. Decoded ByteArray and FixedLenByteArray values alias
// the payload, so the payload must stay immutable while they are live.
//
// Decode and Skip share the EOF contract: the requested batch is either
// fully consumed or the call fails with errs.ErrUnexpectedEOF and the
// cursor position stays where it was.
type Decoder[T physical.Value] struct {
	kind       physical.Kind
	ord        endian.EndianEngine
	data       []byte
	pos        int
	remaining  int
	typeLength int
	bits       bitpack.Reader
}

// NewDecoder returns a cursor for values of type T. typeLength is the
// schema-fixed width of one value and is only consulted by
// FixedLenByteArray instantiations; pass 0 for every other kind.
func NewDecoder[T physical.Value](typeLength int) *Decoder[T] {
	return &Decoder[T]{
		kind:       physical.KindOf[T](),
		ord:        endian.NativeEngine(),
		typeLength: typeLength,
	}
}

// SetData arms the cursor with an encoded payload declared to hold
// numValues values. Any previous payload and position are discarded.
func (d *Decoder[T]) SetData(data []byte, numValues int) {
	d.data = data
	d.pos = 0
	d.remaining = numValues

	if d.kind == physical.KindBoolean {
		d.bits.Reset(data)
	}
}

// Remaining returns the number of values not yet consumed.
func (d *Decoder[T]) Remaining() int {
	return d.remaining
}

// Decode fills out with up to min(len(out), Remaining()) values and
// returns the count decoded. It fails with errs.ErrUnexpectedEOF when the
// payload holds fewer bytes than that count requires; the cursor is left
// unmoved, though out may hold partially decoded values.
func (d *Decoder[T]) Decode(out []T) (int, error) {
	n := min(len(out), d.remaining)
	if n == 0 {
		return 0, nil
	}

	switch d.kind {
	case physical.KindBoolean:
		if got := d.bits.RemainingBits(); got < n {
			return 0, fmt.Errorf("%w: need %d boolean values, have %d bits", errs.ErrUnexpectedEOF, n, got)
		}
		d.bits.GetBools(any(out[:n]).([]bool))

	case physical.KindInt32, physical.KindInt64, physical.KindFloat, physical.KindDouble:
		need := n * d.kind.FixedWidth()
		if got := len(d.data) - d.pos; got < need {
			return 0, fmt.Errorf("%w: need %d bytes to decode %d values, have %d", errs.ErrUnexpectedEOF, need, n, got)
		}
		copy(cast.SliceToBytes(out[:n]), d.data[d.pos:d.pos+need])
		d.pos += need

	case physical.KindInt96:
		need := n * 12
		if got := len(d.data) - d.pos; got < need {
			return 0, fmt.Errorf("%w: need %d bytes to decode %d values, have %d", errs.ErrUnexpectedEOF, need, n, got)
		}
		vals := any(out[:n]).([]physical.Int96)
		pos := d.pos
		for j := range vals {
			vals[j].SetWords([3]uint32{
				binary.LittleEndian.Uint32(d.data[pos:]),
				binary.LittleEndian.Uint32(d.data[pos+4:]),
				binary.LittleEndian.Uint32(d.data[pos+8:]),
			})
			pos += 12
		}
		d.pos = pos

	case physical.KindByteArray:
		vals := any(out[:n]).([]physical.ByteArray)
		pos := d.pos
		for j := range vals {
			end, payload, err := d.nextByteArray(pos)
			if err != nil {
				return 0, err
			}
			vals[j].SetData(payload)
			pos = end
		}
		d.pos = pos

	case physical.KindFixedLenByteArray:
		if err := d.checkTypeLength(); err != nil {
			return 0, err
		}
		need := n * d.typeLength
		if got := len(d.data) - d.pos; got < need {
			return 0, fmt.Errorf("%w: need %d bytes to decode %d values, have %d", errs.ErrUnexpectedEOF, need, n, got)
		}
		vals := any(out[:n]).([]physical.FixedLenByteArray)
		pos := d.pos
		for j := range vals {
			vals[j].SetData(d.data[pos : pos+d.typeLength])
			pos += d.typeLength
		}
		d.pos = pos
	}

	d.remaining -= n

	return n, nil
}

// Skip advances past up to min(count, Remaining()) values without
// materializing them and returns the count skipped. Variable-length values
// still have each length prefix parsed, so Skip moves the cursor exactly as
// far as Decode would. The EOF contract matches Decode.
func (d *Decoder[T]) Skip(count int) (int, error) {
	n := min(count, d.remaining)
	if n <= 0 {
		return 0, nil
	}

	switch d.kind {
	case physical.KindBoolean:
		if got := d.bits.RemainingBits(); got < n {
			return 0, fmt.Errorf("%w: need %d boolean values, have %d bits", errs.ErrUnexpectedEOF, n, got)
		}
		d.bits.SkipBools(n)

	case physical.KindInt32, physical.KindInt64, physical.KindFloat,
		physical.KindDouble, physical.KindInt96:
		need := n * d.kind.FixedWidth()
		if got := len(d.data) - d.pos; got < need {
			return 0, fmt.Errorf("%w: need %d bytes to skip %d values, have %d", errs.ErrUnexpectedEOF, need, n, got)
		}
		d.pos += need

	case physical.KindByteArray:
		pos := d.pos
		for j := 0; j < n; j++ {
			end, _, err := d.nextByteArray(pos)
			if err != nil {
				return 0, err
			}
			pos = end
		}
		d.pos = pos

	case physical.KindFixedLenByteArray:
		if err := d.checkTypeLength(); err != nil {
			return 0, err
		}
		need := n * d.typeLength
		if got := len(d.data) - d.pos; got < need {
			return 0, fmt.Errorf("%w: need %d bytes to skip %d values, have %d", errs.ErrUnexpectedEOF, need, n, got)
		}
		d.pos += need
	}

	d.remaining -= n

	return n, nil
}

// nextByteArray parses one length-prefixed value starting at pos and
// returns the position past it together with the payload view. The cursor
// itself is not touched, so a failed batch leaves no trace.
func (d *Decoder[T]) nextByteArray(pos int) (end int, payload []byte, err error) {
	if got := len(d.data) - pos; got < 4 {
		return 0, nil, fmt.Errorf("%w: truncated length prefix, need 4 bytes, have %d", errs.ErrUnexpectedEOF, got)
	}

	// The prefix is unsigned; the checked slice rejects both a length past
	// the payload and offset arithmetic that wraps the platform int, so a
	// 4GiB prefix cannot sneak through on 32-bit targets.
	size := d.ord.Uint32(d.data[pos : pos+4])
	payload, err = byteslice.SliceAtOffset(d.data, pos, 4, 4+int(size))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: need %d bytes for value, have %d",
			errs.ErrUnexpectedEOF, size, len(d.data)-pos-4)
	}

	return pos + 4 + len(payload), payload, nil
}

// checkTypeLength guards the FixedLenByteArray paths against a decoder
// constructed without the schema element length.
func (d *Decoder[T]) checkTypeLength() error {
	if d.typeLength <= 0 {
		return fmt.Errorf("%w: FixedLenByteArray decoding requires a positive type length, got %d",
			errs.ErrInvalidArgument, d.typeLength)
	}

	return nil
}
