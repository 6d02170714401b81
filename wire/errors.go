package wire

import (
	"errors"
	"fmt"
)

// Decoding errors. Every error is fatal to the in-progress decode call;
// there is no local recovery and no partial result.
var (
	// ErrOutOfBounds means an operation would read past the end of the buffer.
	ErrOutOfBounds = errors.New("read past end of buffer")

	// ErrVarintTooLong means a varint exceeds 10 bytes without a terminal byte.
	ErrVarintTooLong = errors.New("varint too long")

	// ErrVarintOverflow means a 10-byte varint's final group encodes more
	// than the 1 bit still representable in 64 bits.
	ErrVarintOverflow = errors.New("varint overflow")

	// ErrTrailingZeroVarint means a varint's terminal byte group is
	// zero-valued padding, a non-canonical encoding.
	ErrTrailingZeroVarint = errors.New("non-canonical varint: trailing zero group")

	// ErrInvalidWireType means a field key carries a wire type no field
	// may use: the deprecated StartGroup/EndGroup or the unassigned 6/7.
	ErrInvalidWireType = errors.New("invalid wire type")

	// ErrUint32Overflow means a varint decoded as uint32 has non-zero
	// upper 32 bits.
	ErrUint32Overflow = errors.New("varint overflows uint32")

	// ErrInvalidUTF8 means a decoded string is not well-formed UTF-8.
	// Only surfaced when Config.ValidateUTF8OnDecode is set.
	ErrInvalidUTF8 = errors.New("string is not valid UTF-8")
)

// DecodeError wraps a decoding failure with the byte offset at which it
// occurred.
type DecodeError struct {
	Offset int   // offset into the buffer where decoding failed
	Err    error // underlying error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

// errAt wraps an error with the offset of the offending byte
func errAt(offset int, err error) error {
	return &DecodeError{
		Offset: offset,
		Err:    err,
	}
}
