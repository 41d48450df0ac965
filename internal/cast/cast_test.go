package cast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colenc/endian"
)

// int32Image builds the bytes a per-element native-endian write produces,
// the checked counterpart of the reinterpreted view.
func int32Image(vals []int32) []byte {
	ord := endian.NativeEngine()
	buf := make([]byte, 0, len(vals)*4)
	var scratch [4]byte
	for _, v := range vals {
		ord.PutUint32(scratch[:], uint32(v))
		buf = append(buf, scratch[:]...)
	}

	return buf
}

func TestSliceToBytesMatchesPerElementWrites(t *testing.T) {
	ord := endian.NativeEngine()

	t.Run("int32", func(t *testing.T) {
		vals := []int32{0, 1, -1, math.MinInt32, math.MaxInt32}
		got := SliceToBytes(vals)
		require.Len(t, got, len(vals)*4)
		require.Equal(t, int32Image(vals), got)
	})

	t.Run("int64", func(t *testing.T) {
		vals := []int64{0, 1, -1, math.MinInt64, math.MaxInt64}
		want := make([]byte, 0, len(vals)*8)
		var scratch [8]byte
		for _, v := range vals {
			ord.PutUint64(scratch[:], uint64(v))
			want = append(want, scratch[:]...)
		}

		got := SliceToBytes(vals)
		require.Len(t, got, len(vals)*8)
		require.Equal(t, want, got)
	})

	t.Run("float32", func(t *testing.T) {
		vals := []float32{0, float32(math.Copysign(0, -1)), 1.5, float32(math.Inf(1)), float32(math.NaN())}
		want := make([]byte, 0, len(vals)*4)
		var scratch [4]byte
		for _, v := range vals {
			ord.PutUint32(scratch[:], math.Float32bits(v))
			want = append(want, scratch[:]...)
		}

		got := SliceToBytes(vals)
		require.Len(t, got, len(vals)*4)
		require.Equal(t, want, got)
	})

	t.Run("float64", func(t *testing.T) {
		vals := []float64{0, math.Copysign(0, -1), 2.75, math.Inf(-1), math.NaN()}
		want := make([]byte, 0, len(vals)*8)
		var scratch [8]byte
		for _, v := range vals {
			ord.PutUint64(scratch[:], math.Float64bits(v))
			want = append(want, scratch[:]...)
		}

		got := SliceToBytes(vals)
		require.Len(t, got, len(vals)*8)
		require.Equal(t, want, got)
	})
}

func TestSliceToBytesAliasesSource(t *testing.T) {
	src := []int32{10, 20, 30}
	view := SliceToBytes(src)

	// Writes to the source show up in the view.
	src[1] = -7
	require.Equal(t, int32Image(src), view)

	// Writes through the view land in the source, the direction decode
	// uses when it copies wire bytes into a caller's batch.
	copy(view[0:4], int32Image([]int32{99}))
	require.Equal(t, int32(99), src[0])
}

func TestSliceToBytesEmpty(t *testing.T) {
	require.Nil(t, SliceToBytes[int32](nil))
	require.Nil(t, SliceToBytes([]int64{}))
}
