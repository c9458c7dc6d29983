package gsf

import (
	"bytes"
	"encoding/binary"
)

// RecordBuffer is a read-only view over the payload bytes of exactly one
// record, tagged with the record type the framing layer found. It borrows the
// bytes from the reader that produced it and must not be used after that
// reader is closed.
//
// All field extractors validate bounds against the buffer size before
// reading. All multi-byte integers in a GSF file are big endian.
type RecordBuffer struct {
	data []byte
	typ  RecordType
}

// NewRecordBuffer wraps raw record payload bytes with a type tag.
func NewRecordBuffer(data []byte, typ RecordType) *RecordBuffer {
	return &RecordBuffer{data: data, typ: typ}
}

// Size returns the number of payload bytes in the record.
func (b *RecordBuffer) Size() uint32 {
	return uint32(len(b.data))
}

// Type returns the record type the framing layer tagged this buffer with.
func (b *RecordBuffer) Type() RecordType {
	return b.typ
}

// bounds checks that [start, start+width) lies inside the buffer.
func (b *RecordBuffer) bounds(start, width uint32) error {
	if start+width < start || start+width > uint32(len(b.data)) {
		return ErrShortBuffer
	}
	return nil
}

// Text reads up to maxLen bytes at start as text, stopping at the first null
// byte. The full maxLen span must lie within the buffer even when the text
// ends earlier.
func (b *RecordBuffer) Text(start, maxLen uint32) (string, error) {
	if err := b.bounds(start, maxLen); err != nil {
		return "", err
	}
	raw := b.data[start : start+maxLen]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw), nil
}

// Uint32 reads a big-endian unsigned 32-bit integer at start.
func (b *RecordBuffer) Uint32(start uint32) (uint32, error) {
	if err := b.bounds(start, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b.data[start:]), nil
}

// Int32 reads a big-endian signed 32-bit integer at start.
func (b *RecordBuffer) Int32(start uint32) (int32, error) {
	v, err := b.Uint32(start)
	return int32(v), err
}

// Uint16 reads a big-endian unsigned 16-bit integer at start.
func (b *RecordBuffer) Uint16(start uint32) (uint16, error) {
	if err := b.bounds(start, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b.data[start:]), nil
}

// Int16 reads a big-endian signed 16-bit integer at start.
func (b *RecordBuffer) Int16(start uint32) (int16, error) {
	v, err := b.Uint16(start)
	return int16(v), err
}
