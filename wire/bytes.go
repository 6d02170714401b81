package wire

import (
	"unicode/utf8"
)

// DECODER METHODS

// DecodeLengthDelimited decodes a varint length prefix followed by
// exactly that many bytes. The returned slice is a copy and does not
// share the caller's buffer.
func DecodeLengthDelimited(buf []byte, pos int) ([]byte, int, error) {
	size, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return nil, pos, err
	}

	// Compare in uint64 space so a hostile length prefix cannot wrap
	// the int arithmetic on 32-bit platforms.
	if size > uint64(len(buf)-n) {
		return nil, pos, errAt(n, ErrOutOfBounds)
	}

	data := make([]byte, size)
	copy(data, buf[n:n+int(size)])
	return data, n + int(size), nil
}

// DecodeRawBytes decodes a length-delimited payload without copying;
// the returned slice shares the underlying buffer.
func DecodeRawBytes(buf []byte, pos int) ([]byte, int, error) {
	size, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return nil, pos, err
	}

	if size > uint64(len(buf)-n) {
		return nil, pos, errAt(n, ErrOutOfBounds)
	}

	return buf[n : n+int(size)], n + int(size), nil
}

// DecodeBytes decodes a length-delimited byte array
func DecodeBytes(buf []byte, pos int) ([]byte, int, error) {
	return DecodeLengthDelimited(buf, pos)
}

// DecodeEmbeddedMessage decodes the raw bytes of an embedded message.
// The caller recursively decodes the returned slice with its own
// schema-aware parser starting at position 0; this decoder does not
// recurse.
func DecodeEmbeddedMessage(buf []byte, pos int) ([]byte, int, error) {
	return DecodeLengthDelimited(buf, pos)
}

// DecodeString decodes a length-delimited payload as text. Well-formed
// UTF-8 is only enforced when Config.ValidateUTF8OnDecode is set; by
// default the bytes are reinterpreted verbatim.
func DecodeString(buf []byte, pos int) (string, int, error) {
	data, n, err := DecodeLengthDelimited(buf, pos)
	if err != nil {
		return "", pos, err
	}
	if config.ValidateUTF8OnDecode && !utf8.Valid(data) {
		return "", pos, errAt(pos, ErrInvalidUTF8)
	}
	return string(data), n, nil
}

// SkipBytes skips over a length-delimited payload
func SkipBytes(buf []byte, pos int) (int, error) {
	size, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return pos, err
	}

	if size > uint64(len(buf)-n) {
		return pos, errAt(n, ErrOutOfBounds)
	}

	return n + int(size), nil
}
