package wire

// Decoder is a cursor over a buffer for callers that prefer stateful
// iteration to threading positions by hand. Every method delegates to
// the corresponding stateless primitive and advances the cursor only on
// success, so a failed call leaves the position untouched.
//
// The decoder never mutates the buffer and holds no other state;
// distinct decoders over a shared read-only buffer are safe to use
// concurrently.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a new wire format decoder over data
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// Pos returns the current cursor position
func (d *Decoder) Pos() int { return d.pos }

// More reports whether any bytes remain before the end of the buffer
func (d *Decoder) More() bool { return d.pos < len(d.buf) }

// DecodeKey decodes the next field key
func (d *Decoder) DecodeKey() (FieldNumber, WireType, error) {
	fieldNumber, wireType, n, err := DecodeKey(d.buf, d.pos)
	if err != nil {
		return 0, 0, err
	}
	d.pos = n
	return fieldNumber, wireType, nil
}

// DecodeVarint decodes a varint from the current position
func (d *Decoder) DecodeVarint() (uint64, error) {
	v, n, err := DecodeVarint(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeUint32 decodes a varint as uint32
func (d *Decoder) DecodeUint32() (uint32, error) {
	v, n, err := DecodeUint32(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeUint64 decodes a varint as uint64
func (d *Decoder) DecodeUint64() (uint64, error) {
	return d.DecodeVarint()
}

// DecodeBool decodes a varint as bool
func (d *Decoder) DecodeBool() (bool, error) {
	v, n, err := DecodeBool(d.buf, d.pos)
	if err != nil {
		return false, err
	}
	d.pos = n
	return v, nil
}

// DecodeEnum decodes a varint as a raw enum ordinal
func (d *Decoder) DecodeEnum() (uint64, error) {
	return d.DecodeVarint()
}

// DecodeInt32 decodes a varint as int32
func (d *Decoder) DecodeInt32() (int32, error) {
	v, n, err := DecodeInt32(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeInt64 decodes a varint as int64
func (d *Decoder) DecodeInt64() (int64, error) {
	v, n, err := DecodeInt64(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeSint32 decodes a zigzag-encoded signed varint as int32
func (d *Decoder) DecodeSint32() (int32, error) {
	v, n, err := DecodeSint32(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeSint64 decodes a zigzag-encoded signed varint as int64
func (d *Decoder) DecodeSint64() (int64, error) {
	v, n, err := DecodeSint64(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeFixed32 decodes a 32-bit fixed-width value
func (d *Decoder) DecodeFixed32() (uint32, error) {
	v, n, err := DecodeFixed32(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeFixed64 decodes a 64-bit fixed-width value
func (d *Decoder) DecodeFixed64() (uint64, error) {
	v, n, err := DecodeFixed64(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeSfixed32 decodes a signed 32-bit fixed-width value
func (d *Decoder) DecodeSfixed32() (int32, error) {
	v, n, err := DecodeSfixed32(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeSfixed64 decodes a signed 64-bit fixed-width value
func (d *Decoder) DecodeSfixed64() (int64, error) {
	v, n, err := DecodeSfixed64(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeFloat32 decodes a 32-bit float from fixed32 data
func (d *Decoder) DecodeFloat32() (float32, error) {
	v, n, err := DecodeFloat32(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeFloat64 decodes a 64-bit float from fixed64 data
func (d *Decoder) DecodeFloat64() (float64, error) {
	v, n, err := DecodeFloat64(d.buf, d.pos)
	if err != nil {
		return 0, err
	}
	d.pos = n
	return v, nil
}

// DecodeBytes decodes a length-delimited byte array
func (d *Decoder) DecodeBytes() ([]byte, error) {
	v, n, err := DecodeBytes(d.buf, d.pos)
	if err != nil {
		return nil, err
	}
	d.pos = n
	return v, nil
}

// DecodeRawBytes decodes bytes without copying (shares buffer)
func (d *Decoder) DecodeRawBytes() ([]byte, error) {
	v, n, err := DecodeRawBytes(d.buf, d.pos)
	if err != nil {
		return nil, err
	}
	d.pos = n
	return v, nil
}

// DecodeString decodes a length-delimited string
func (d *Decoder) DecodeString() (string, error) {
	v, n, err := DecodeString(d.buf, d.pos)
	if err != nil {
		return "", err
	}
	d.pos = n
	return v, nil
}

// DecodeEmbeddedMessage decodes the raw bytes of an embedded message
// for the caller to decode recursively with its own parser.
func (d *Decoder) DecodeEmbeddedMessage() ([]byte, error) {
	return d.DecodeBytes()
}

// SkipValue skips one value of the given wire type
func (d *Decoder) SkipValue(wireType WireType) error {
	var (
		n   int
		err error
	)
	switch wireType {
	case WireVarint:
		n, err = SkipVarint(d.buf, d.pos)
	case WireFixed64:
		n, err = SkipFixed64(d.buf, d.pos)
	case WireBytes:
		n, err = SkipBytes(d.buf, d.pos)
	case WireFixed32:
		n, err = SkipFixed32(d.buf, d.pos)
	default:
		return errAt(d.pos, ErrInvalidWireType)
	}
	if err != nil {
		return err
	}
	d.pos = n
	return nil
}

// DecodeField decodes a single field from the current position without
// type information, returning the raw value for the field's wire type.
// Returns nil at the end of the buffer.
func (d *Decoder) DecodeField() (*Value, error) {
	if !d.More() {
		return nil, nil
	}

	fieldNumber, wireType, err := d.DecodeKey()
	if err != nil {
		return nil, err
	}

	data, err := d.decodeRawValue(wireType)
	if err != nil {
		return nil, err
	}

	return &Value{
		FieldNumber: fieldNumber,
		WireType:    wireType,
		Data:        data,
	}, nil
}

// decodeRawValue decodes without type information
func (d *Decoder) decodeRawValue(wireType WireType) (interface{}, error) {
	switch wireType {
	case WireVarint:
		return d.DecodeVarint()
	case WireFixed64:
		return d.DecodeFixed64()
	case WireBytes:
		return d.DecodeBytes()
	case WireFixed32:
		return d.DecodeFixed32()
	default:
		return nil, errAt(d.pos, ErrInvalidWireType)
	}
}
