package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_Put_LSBFirst(t *testing.T) {
	w := NewWriter(8)

	// true, false, true, true -> bit0=1, bit1=0, bit2=1, bit3=1 -> 0b1101
	w.Put(true)
	w.Put(false)
	w.Put(true)
	w.Put(true)
	w.Flush()

	require.Equal(t, []byte{0b1101}, w.Bytes())
	require.Equal(t, 4, w.BitCount())
	require.Equal(t, 1, w.Len())
}

func TestWriter_Put_AlternatingFullByte(t *testing.T) {
	w := NewWriter(8)

	for i := 0; i < 8; i++ {
		w.Put(i%2 == 0)
	}
	w.Flush()

	require.Equal(t, []byte{0x55}, w.Bytes())
}

func TestWriter_Put_CrossesByteBoundary(t *testing.T) {
	w := NewWriter(8)

	// Nine trues: first byte 0xFF, second byte bit0 set.
	for i := 0; i < 9; i++ {
		w.Put(true)
	}
	w.Flush()

	require.Equal(t, []byte{0xFF, 0x01}, w.Bytes())
	require.Equal(t, 9, w.BitCount())
}

func TestWriter_Put_CrossesAccumulatorBoundary(t *testing.T) {
	w := NewWriter(16)

	// 70 bits forces one internal 64-bit flush plus a trailing partial.
	for i := 0; i < 70; i++ {
		w.Put(true)
	}
	w.Flush()

	expected := make([]byte, 9)
	for i := 0; i < 8; i++ {
		expected[i] = 0xFF
	}
	expected[8] = 0x3F // 6 remaining bits

	require.Equal(t, expected, w.Bytes())
	require.Equal(t, 70, w.BitCount())
}

func TestWriter_PutValue_SplitsAcrossWords(t *testing.T) {
	w := NewWriter(16)

	// 60 single bits leave 4 bits of room; a 12-bit value must split.
	for i := 0; i < 60; i++ {
		w.Put(false)
	}
	w.PutValue(0xABC, 12)
	w.Flush()

	r := NewReader(w.Bytes())
	skipped := r.SkipBools(60)
	require.Equal(t, 60, skipped)

	v, ok := r.GetValue(12)
	require.True(t, ok)
	require.Equal(t, uint64(0xABC), v)
}

func TestWriter_PutValue_MasksWideInput(t *testing.T) {
	w := NewWriter(8)

	w.PutValue(0xFFFF, 4) // only low 4 bits survive
	w.Flush()

	require.Equal(t, []byte{0x0F}, w.Bytes())
}

func TestWriter_Reset(t *testing.T) {
	w := NewWriter(8)
	w.Put(true)
	w.Flush()
	require.Equal(t, 1, w.Len())

	w.Reset()
	require.Equal(t, 0, w.Len())
	require.Equal(t, 0, w.BitCount())

	w.Put(false)
	w.Put(true)
	w.Flush()
	require.Equal(t, []byte{0b10}, w.Bytes())
}

func TestReader_GetBool(t *testing.T) {
	r := NewReader([]byte{0b1101})

	expected := []bool{true, false, true, true, false, false, false, false}
	for i, want := range expected {
		v, ok := r.GetBool()
		require.True(t, ok, "bit %d", i)
		require.Equal(t, want, v, "bit %d", i)
	}

	_, ok := r.GetBool()
	require.False(t, ok, "reader should be exhausted")
}

func TestReader_GetValue(t *testing.T) {
	w := NewWriter(16)
	w.PutValue(0x3, 2)
	w.PutValue(0x1F, 5)
	w.PutValue(0xDEADBEEF, 32)
	w.Flush()

	r := NewReader(w.Bytes())

	v, ok := r.GetValue(2)
	require.True(t, ok)
	require.Equal(t, uint64(0x3), v)

	v, ok = r.GetValue(5)
	require.True(t, ok)
	require.Equal(t, uint64(0x1F), v)

	v, ok = r.GetValue(32)
	require.True(t, ok)
	require.Equal(t, uint64(0xDEADBEEF), v)
}

func TestReader_GetValue_FullWidth(t *testing.T) {
	w := NewWriter(16)
	w.PutValue(0x0123456789ABCDEF, 64)
	w.Flush()

	r := NewReader(w.Bytes())
	v, ok := r.GetValue(64)
	require.True(t, ok)
	require.Equal(t, uint64(0x0123456789ABCDEF), v)
}

func TestReader_GetValue_InsufficientBits(t *testing.T) {
	r := NewReader([]byte{0xFF})

	_, ok := r.GetValue(9)
	require.False(t, ok)

	// The failed read must not consume anything.
	require.Equal(t, 8, r.RemainingBits())
}

func TestReader_GetBools_StopsAtEnd(t *testing.T) {
	r := NewReader([]byte{0xFF})

	out := make([]bool, 12)
	n := r.GetBools(out)
	require.Equal(t, 8, n)
	for i := 0; i < 8; i++ {
		require.True(t, out[i])
	}
}

func TestReader_SkipBools(t *testing.T) {
	w := NewWriter(32)
	for i := 0; i < 20; i++ {
		w.Put(i >= 17) // last three bits true
	}
	w.Flush()

	r := NewReader(w.Bytes())
	require.Equal(t, 17, r.SkipBools(17))

	out := make([]bool, 3)
	require.Equal(t, 3, r.GetBools(out))
	require.Equal(t, []bool{true, true, true}, out)
}

func TestReader_SkipBools_ClampsToRemaining(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF})

	require.Equal(t, 16, r.SkipBools(100))
	require.Equal(t, 0, r.RemainingBits())
	require.Equal(t, 0, r.SkipBools(5))
}

func TestReader_SkipBools_WholeByteJump(t *testing.T) {
	data := make([]byte, 64)
	data[32] = 0x01 // bit 256

	r := NewReader(data)
	require.Equal(t, 256, r.SkipBools(256))

	v, ok := r.GetBool()
	require.True(t, ok)
	require.True(t, v)
}

func TestReader_RemainingBits(t *testing.T) {
	r := NewReader([]byte{0xAA, 0xBB, 0xCC})
	require.Equal(t, 24, r.RemainingBits())

	_, _ = r.GetBool()
	require.Equal(t, 23, r.RemainingBits())

	r.Reset([]byte{0x01})
	require.Equal(t, 8, r.RemainingBits())
}

func TestWriterReader_RoundTripRandomPattern(t *testing.T) {
	// Deterministic pseudo-random pattern, long enough to exercise both
	// fast and slow fill paths.
	values := make([]bool, 1000)
	state := uint64(0x9E3779B97F4A7C15)
	for i := range values {
		state = state*6364136223846793005 + 1442695040888963407
		values[i] = state&(1<<33) != 0
	}

	w := NewWriter(len(values) / 8)
	w.PutBools(values)
	w.Flush()

	r := NewReader(w.Bytes())
	out := make([]bool, len(values))
	require.Equal(t, len(values), r.GetBools(out))
	require.Equal(t, values, out)
}
