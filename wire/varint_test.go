package wire

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVarint(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		expected uint64
	}{
		{"zero", []byte{0x00}, 0},
		{"one", []byte{0x01}, 1},
		{"max single byte", []byte{0x7F}, 127},
		{"two bytes min", []byte{0x80, 0x01}, 128},
		{"classic 300", []byte{0xAC, 0x02}, 300},
		{"max uint32", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, math.MaxUint32},
		{"bit 63", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, 1 << 63},
		{"max uint64", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, n, err := DecodeVarint(tt.buf, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
			assert.Equal(t, len(tt.buf), n, "should consume the whole encoding")
		})
	}
}

func TestDecodeVarint_MidBuffer(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xAC, 0x02, 0xDE}

	v, n, err := DecodeVarint(buf, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
	assert.Equal(t, 4, n)
}

func TestDecodeVarint_Errors(t *testing.T) {
	tenContinuations := make([]byte, 10)
	for i := range tenContinuations {
		tenContinuations[i] = 0xFF
	}

	tests := []struct {
		name     string
		buf      []byte
		pos      int
		expected error
	}{
		{"empty buffer", nil, 0, ErrOutOfBounds},
		{"position at end", []byte{0x01}, 1, ErrOutOfBounds},
		{"truncated after continuation", []byte{0x80}, 0, ErrOutOfBounds},
		{"zero-padded two bytes", []byte{0x80, 0x00}, 0, ErrTrailingZeroVarint},
		{"zero-padded three bytes", []byte{0x80, 0x80, 0x00}, 0, ErrTrailingZeroVarint},
		{"padded non-minimal one", []byte{0x81, 0x00}, 0, ErrTrailingZeroVarint},
		{"no terminal byte in ten", tenContinuations, 0, ErrVarintTooLong},
		{"tenth byte exceeds one bit", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02}, 0, ErrVarintOverflow},
		{"tenth byte full group", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, 0, ErrVarintOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n, err := DecodeVarint(tt.buf, tt.pos)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, tt.pos, n, "failed decode must not advance the position")

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.GreaterOrEqual(t, de.Offset, tt.pos)
		})
	}
}

func TestDecodeUint32(t *testing.T) {
	v, n, err := DecodeUint32([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), v)
	assert.Equal(t, 5, n)

	// 2^32 and 2^32+1 both spill into the upper half.
	for _, buf := range [][]byte{
		{0x80, 0x80, 0x80, 0x80, 0x10},
		{0x81, 0x80, 0x80, 0x80, 0x10},
	} {
		_, n, err := DecodeUint32(buf, 0)
		assert.ErrorIs(t, err, ErrUint32Overflow)
		assert.Equal(t, 0, n)
	}
}

func TestDecodeBool(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		expected bool
	}{
		{"false", []byte{0x00}, false},
		{"true", []byte{0x01}, true},
		{"two is not true", []byte{0x02}, false},
		{"large value is not true", []byte{0xAC, 0x02}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, n, err := DecodeBool(tt.buf, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
			assert.Equal(t, len(tt.buf), n)
		})
	}

	_, _, err := DecodeBool([]byte{0x80}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDecodeEnum(t *testing.T) {
	// The raw ordinal comes back unvalidated; range checks belong to the caller.
	v, n, err := DecodeEnum([]byte{0xAC, 0x02}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
	assert.Equal(t, 2, n)
}

func TestDecodeSint(t *testing.T) {
	tests := []struct {
		buf      []byte
		expected int32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, -1},
		{[]byte{0x02}, 1},
		{[]byte{0x03}, -2},
		{[]byte{0xFE, 0xFF, 0xFF, 0xFF, 0x0F}, math.MaxInt32},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, math.MinInt32},
	}

	for _, tt := range tests {
		v32, n, err := DecodeSint32(tt.buf, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, v32)
		assert.Equal(t, len(tt.buf), n)

		v64, _, err := DecodeSint64(tt.buf, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(tt.expected), v64)
	}
}

func TestDecodeInt(t *testing.T) {
	// Negative int32/int64 arrive as the full two's-complement uint64.
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}

	v32, n, err := DecodeInt32(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v32)
	assert.Equal(t, 10, n)

	v64, _, err := DecodeInt64(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v64)
}

func TestSkipVarint(t *testing.T) {
	n, err := SkipVarint([]byte{0xAC, 0x02, 0x01}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Skipping enforces the same canonicality rules as decoding.
	_, err = SkipVarint([]byte{0x80, 0x00}, 0)
	assert.ErrorIs(t, err, ErrTrailingZeroVarint)

	_, err = SkipVarint([]byte{0x80}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestZigZag(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 63, -64, math.MaxInt32, math.MinInt32} {
		encoded := uint64((uint32(v) << 1) ^ uint32(v>>31))
		assert.Equal(t, v, DecodeZigZag32(encoded))
	}
	for _, v := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		encoded := uint64((v << 1) ^ (v >> 63))
		assert.Equal(t, v, DecodeZigZag64(encoded))
	}
}

func TestDecodeError_Message(t *testing.T) {
	_, _, err := DecodeVarint([]byte{0x80, 0x00}, 0)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Offset, "terminal padding byte is the offending byte")
	assert.Contains(t, err.Error(), "offset 1")
	assert.NotNil(t, errors.Unwrap(err))
}

func BenchmarkDecodeVarint(b *testing.B) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := DecodeVarint(buf, 0); err != nil {
			b.Fatal(err)
		}
	}
}
