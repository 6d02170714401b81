package wire

// DecodeKey decodes a field key: one varint split into the field number
// (high bits) and wire type (low 3 bits). Keys carrying the deprecated
// StartGroup/EndGroup wire types, or the unassigned tags 6/7, are
// rejected with ErrInvalidWireType.
func DecodeKey(buf []byte, pos int) (FieldNumber, WireType, int, error) {
	key, n, err := DecodeVarint(buf, pos)
	if err != nil {
		return 0, 0, pos, err
	}

	fieldNumber, wireType := ParseTag(Tag(key))
	if !wireType.Valid() {
		return 0, 0, pos, errAt(pos, ErrInvalidWireType)
	}

	return fieldNumber, wireType, n, nil
}
