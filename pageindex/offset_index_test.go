package pageindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/colenc/endian"
	"github.com/arloliu/colenc/errs"
)

func TestOffsetEntry_AppendTo_MatchesBytes(t *testing.T) {
	e := OffsetEntry{Offset: 0x11223344, ByteLen: 0x55667788, FirstRow: 0x99AABBCC}

	for _, engine := range []endian.EndianEngine{
		endian.GetLittleEndianEngine(),
		endian.GetBigEndianEngine(),
	} {
		got := e.AppendTo(nil, engine)
		require.Equal(t, e.Bytes(engine), got)
		require.Len(t, got, OffsetEntrySize)
	}
}

func TestParseOffsetEntry(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	data := []byte{
		0x10, 0x00, 0x00, 0x00, // Offset = 16
		0x80, 0x00, 0x00, 0x00, // ByteLen = 128
		0x05, 0x00, 0x00, 0x00, // FirstRow = 5
	}

	e, err := ParseOffsetEntry(data, engine)
	require.NoError(t, err)
	require.Equal(t, OffsetEntry{Offset: 16, ByteLen: 128, FirstRow: 5}, e)

	_, err = ParseOffsetEntry(data[:11], engine)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestOffsetIndex_Add(t *testing.T) {
	x := NewOffsetIndex(300)
	require.NoError(t, x.Add(OffsetEntry{Offset: 0, ByteLen: 64, FirstRow: 0}))
	require.NoError(t, x.Add(OffsetEntry{Offset: 64, ByteLen: 64, FirstRow: 100}))

	err := x.Add(OffsetEntry{Offset: 128, ByteLen: 64, FirstRow: 100})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	err = x.Add(OffsetEntry{Offset: 128, ByteLen: 64, FirstRow: 50})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	require.Equal(t, 2, x.NumPages())
	require.Equal(t, int64(300), x.RowCount())
}

func TestOffsetIndex_Entry(t *testing.T) {
	x := NewOffsetIndex(10)
	require.NoError(t, x.Add(OffsetEntry{Offset: 0, ByteLen: 32, FirstRow: 0}))

	e, err := x.Entry(0)
	require.NoError(t, err)
	require.Equal(t, uint32(32), e.ByteLen)

	_, err = x.Entry(1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	_, err = x.Entry(-1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestOffsetIndex_RoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	x := NewOffsetIndex(250)
	entries := []OffsetEntry{
		{Offset: 0, ByteLen: 412, FirstRow: 0},
		{Offset: 412, ByteLen: 412, FirstRow: 100},
		{Offset: 824, ByteLen: 212, FirstRow: 200},
	}
	for _, e := range entries {
		require.NoError(t, x.Add(e))
	}

	wire := x.AppendTo(nil, engine)
	require.Len(t, wire, len(entries)*OffsetEntrySize)

	parsed, err := ParseOffsetIndex(wire, len(entries), 250, engine)
	require.NoError(t, err)
	require.Equal(t, len(entries), parsed.NumPages())
	require.Equal(t, int64(250), parsed.RowCount())
	for i, want := range entries {
		got, err := parsed.Entry(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseOffsetIndex_Truncated(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	wire := OffsetEntry{Offset: 0, ByteLen: 8, FirstRow: 0}.AppendTo(nil, engine)

	_, err := ParseOffsetIndex(wire, 2, 10, engine)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)

	_, err = ParseOffsetIndex(wire, -1, 10, engine)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestOffsetIndex_PageForRow(t *testing.T) {
	x := NewOffsetIndex(300)
	require.NoError(t, x.Add(OffsetEntry{Offset: 0, ByteLen: 412, FirstRow: 0}))
	require.NoError(t, x.Add(OffsetEntry{Offset: 412, ByteLen: 412, FirstRow: 100}))
	require.NoError(t, x.Add(OffsetEntry{Offset: 824, ByteLen: 212, FirstRow: 250}))

	testCases := []struct {
		row  int
		want int
	}{
		{row: 0, want: 0},
		{row: 1, want: 0},
		{row: 99, want: 0},
		{row: 100, want: 1},
		{row: 249, want: 1},
		{row: 250, want: 2},
		{row: 299, want: 2},
	}
	for _, tc := range testCases {
		got, err := x.PageForRow(tc.row)
		require.NoError(t, err, "row %d", tc.row)
		require.Equal(t, tc.want, got, "row %d", tc.row)
	}

	_, err := x.PageForRow(-1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	_, err = x.PageForRow(300)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestOffsetIndex_PageForRow_Empty(t *testing.T) {
	x := NewOffsetIndex(0)
	_, err := x.PageForRow(0)
	require.ErrorIs(t, err, errs.ErrEmptyData)
}

func TestOffsetIndex_PageForRow_SinglePage(t *testing.T) {
	x := NewOffsetIndex(42)
	require.NoError(t, x.Add(OffsetEntry{Offset: 0, ByteLen: 200, FirstRow: 0}))

	got, err := x.PageForRow(41)
	require.NoError(t, err)
	require.Equal(t, 0, got)

	_, err = x.PageForRow(42)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}
