package wire

// maxVarintBytes is the largest encoding of a 64-bit varint: nine full
// 7-bit groups plus a tenth group carrying the final bit.
const maxVarintBytes = 10

// DecodeVarint decodes a canonical varint starting at pos and returns
// the value and the position after the consumed bytes.
//
// Each byte contributes its low 7 bits, least-significant group first;
// the high bit signals continuation. Non-minimal encodings are rejected:
// a terminal byte whose 7-bit group is zero is only legal as the sole
// byte of a zero value, and a 10th byte may carry at most 1 payload bit.
func DecodeVarint(buf []byte, pos int) (uint64, int, error) {
	var value uint64

	for i := 0; i < maxVarintBytes; i++ {
		if pos+i >= len(buf) {
			return 0, pos, errAt(pos+i, ErrOutOfBounds)
		}

		b := buf[pos+i]
		group := uint64(b & 0x7F)

		if b&0x80 == 0 {
			// Terminal byte.
			if group == 0 && i > 0 {
				return 0, pos, errAt(pos+i, ErrTrailingZeroVarint)
			}
			if i == maxVarintBytes-1 && group > 1 {
				// 9*7 = 63 bits are already filled; only 1 more fits.
				return 0, pos, errAt(pos+i, ErrVarintOverflow)
			}
			value |= group << (7 * uint(i))
			return value, pos + i + 1, nil
		}

		value |= group << (7 * uint(i))
	}

	return 0, pos, errAt(pos+maxVarintBytes-1, ErrVarintTooLong)
}

// DecodeUint64 decodes a varint as uint64
func DecodeUint64(buf []byte, pos int) (uint64, int, error) {
	return DecodeVarint(buf, pos)
}

// DecodeUint32 decodes a varint as uint32. Values with any of the upper
// 32 bits set are rejected rather than truncated.
func DecodeUint32(buf []byte, pos int) (uint32, int, error) {
	v, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return 0, pos, err
	}
	if v>>32 != 0 {
		return 0, pos, errAt(pos, ErrUint32Overflow)
	}
	return uint32(v), n, nil
}

// DecodeBool decodes a varint as bool. The result is true iff the value
// equals 1; larger values decode to false without error, mirroring
// permissive protobuf semantics.
func DecodeBool(buf []byte, pos int) (bool, int, error) {
	v, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return false, pos, err
	}
	return v == 1, n, nil
}

// DecodeEnum decodes a varint as a raw enum ordinal. Range validation
// against the enum definition is the caller's responsibility.
func DecodeEnum(buf []byte, pos int) (uint64, int, error) {
	return DecodeUint64(buf, pos)
}

// DecodeInt32 decodes a varint as int32
func DecodeInt32(buf []byte, pos int) (int32, int, error) {
	v, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return 0, pos, err
	}
	return int32(v), n, nil
}

// DecodeInt64 decodes a varint as int64
func DecodeInt64(buf []byte, pos int) (int64, int, error) {
	v, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return 0, pos, err
	}
	return int64(v), n, nil
}

// DecodeSint32 decodes a zigzag-encoded signed varint as int32
func DecodeSint32(buf []byte, pos int) (int32, int, error) {
	v, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return 0, pos, err
	}
	return DecodeZigZag32(v), n, nil
}

// DecodeSint64 decodes a zigzag-encoded signed varint as int64
func DecodeSint64(buf []byte, pos int) (int64, int, error) {
	v, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return 0, pos, err
	}
	return DecodeZigZag64(v), n, nil
}

// SkipVarint skips over a varint, enforcing the same canonicality rules
// as DecodeVarint so a skipped field consumes exactly the bytes a decode
// would have.
func SkipVarint(buf []byte, pos int) (int, error) {
	_, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return pos, err
	}
	return n, nil
}

// DecodeZigZag32 decodes a zigzag-encoded 32-bit integer
func DecodeZigZag32(encoded uint64) int32 {
	return int32((uint32(encoded) >> 1) ^ uint32(-int32(encoded&1)))
}

// DecodeZigZag64 decodes a zigzag-encoded 64-bit integer
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}
