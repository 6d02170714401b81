package wire

import (
	"encoding/binary"
	"math"
)

// DECODER METHODS

// DecodeBits64 decodes a 64-bit fixed-width value, little-endian, no
// varint encoding.
func DecodeBits64(buf []byte, pos int) (uint64, int, error) {
	if len(buf)-pos < 8 {
		return 0, pos, errAt(pos, ErrOutOfBounds)
	}
	return binary.LittleEndian.Uint64(buf[pos:]), pos + 8, nil
}

// DecodeFixed64 decodes a 64-bit fixed-width value
func DecodeFixed64(buf []byte, pos int) (uint64, int, error) {
	return DecodeBits64(buf, pos)
}

// DecodeBits32 decodes a 32-bit fixed-width value, little-endian.
func DecodeBits32(buf []byte, pos int) (uint32, int, error) {
	if len(buf)-pos < 4 {
		return 0, pos, errAt(pos, ErrOutOfBounds)
	}
	return binary.LittleEndian.Uint32(buf[pos:]), pos + 4, nil
}

// DecodeFixed32 decodes a 32-bit fixed-width value
func DecodeFixed32(buf []byte, pos int) (uint32, int, error) {
	return DecodeBits32(buf, pos)
}

// DecodeSfixed32 decodes a signed 32-bit fixed-width value
func DecodeSfixed32(buf []byte, pos int) (int32, int, error) {
	v, n, err := DecodeBits32(buf, pos)
	if err != nil {
		return 0, pos, err
	}
	return int32(v), n, nil
}

// DecodeSfixed64 decodes a signed 64-bit fixed-width value
func DecodeSfixed64(buf []byte, pos int) (int64, int, error) {
	v, n, err := DecodeBits64(buf, pos)
	if err != nil {
		return 0, pos, err
	}
	return int64(v), n, nil
}

// DecodeFloat32 decodes a 32-bit float from fixed32 data
func DecodeFloat32(buf []byte, pos int) (float32, int, error) {
	v, n, err := DecodeBits32(buf, pos)
	if err != nil {
		return 0, pos, err
	}
	return math.Float32frombits(v), n, nil
}

// DecodeFloat64 decodes a 64-bit float from fixed64 data
func DecodeFloat64(buf []byte, pos int) (float64, int, error) {
	v, n, err := DecodeBits64(buf, pos)
	if err != nil {
		return 0, pos, err
	}
	return math.Float64frombits(v), n, nil
}

// SkipFixed32 skips over a 32-bit fixed-width value
func SkipFixed32(buf []byte, pos int) (int, error) {
	if len(buf)-pos < 4 {
		return pos, errAt(pos, ErrOutOfBounds)
	}
	return pos + 4, nil
}

// SkipFixed64 skips over a 64-bit fixed-width value
func SkipFixed64(buf []byte, pos int) (int, error) {
	if len(buf)-pos < 8 {
		return pos, errAt(pos, ErrOutOfBounds)
	}
	return pos + 8, nil
}
