package column

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colenc/errs"
	"github.com/arloliu/colenc/physical"
)

func TestNewBuilderOf_AllKinds(t *testing.T) {
	descs := []Descriptor{
		{Name: "a", Kind: physical.KindBoolean},
		{Name: "b", Kind: physical.KindInt32},
		{Name: "c", Kind: physical.KindInt64},
		{Name: "d", Kind: physical.KindInt96},
		{Name: "e", Kind: physical.KindFloat},
		{Name: "f", Kind: physical.KindDouble},
		{Name: "g", Kind: physical.KindByteArray},
		{Name: "h", Kind: physical.KindFixedLenByteArray, TypeLength: 8},
	}

	for _, desc := range descs {
		t.Run(desc.Kind.String(), func(t *testing.T) {
			b, err := NewBuilderOf(desc)
			require.NoError(t, err)
			defer b.Close()

			require.Equal(t, desc.Kind, b.Kind())
			require.True(t, b.IsEmpty())
			require.Equal(t, 0, b.Len())
		})
	}
}

func TestNewBuilderOf_InvalidKind(t *testing.T) {
	_, err := NewBuilderOf(Descriptor{Name: "x", Kind: physical.Kind(0x9)})
	require.ErrorIs(t, err, errs.ErrInvalidKind)

	_, err = NewBuilderOf(Descriptor{Name: "x"})
	require.ErrorIs(t, err, errs.ErrInvalidKind)
}

func TestBuilder_AppendAny(t *testing.T) {
	b, err := NewBuilderOf(int32Desc("c"))
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.AppendAny(int32(42)))
	require.NoError(t, b.AppendAny(int32(-1)))
	require.Equal(t, 2, b.Len())

	err = b.AppendAny(int64(42))
	require.ErrorIs(t, err, errs.ErrTypeMismatch)

	err = b.AppendAny("not a number")
	require.ErrorIs(t, err, errs.ErrTypeMismatch)

	require.Equal(t, 2, b.Len())
}

func TestBuilder_Downcast(t *testing.T) {
	b, err := NewBuilderOf(int32Desc("c"))
	require.NoError(t, err)
	defer b.Close()

	w, ok := b.(*Writer[int32])
	require.True(t, ok)

	require.NoError(t, w.AppendBatch([]int32{1, 2, 3}))
	require.Equal(t, 3, b.Len())
}

func TestBuilder_ErasedRoundTrip(t *testing.T) {
	b, err := NewBuilderOf(Descriptor{Name: "ok", Kind: physical.KindBoolean})
	require.NoError(t, err)
	defer b.Close()

	values := []bool{true, true, false, true}
	for _, v := range values {
		require.NoError(t, b.AppendAny(v))
	}

	col, err := b.Finish()
	require.NoError(t, err)

	r, err := NewReader[bool](col)
	require.NoError(t, err)

	out := make([]bool, len(values))
	n, err := r.ReadAll(out)
	require.NoError(t, err)
	require.Equal(t, len(values), n)
	require.Equal(t, values, out)
}

func TestBuilder_ByteArrayAppendAny(t *testing.T) {
	b, err := NewBuilderOf(Descriptor{Name: "names", Kind: physical.KindByteArray})
	require.NoError(t, err)
	defer b.Close()

	require.NoError(t, b.AppendAny(physical.ByteArrayFromString("x")))

	// A raw byte slice is not a ByteArray; the boundary does not convert.
	err = b.AppendAny([]byte("x"))
	require.ErrorIs(t, err, errs.ErrTypeMismatch)
}
