package gsf

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/oceanscan/gsf/internal/mmap"
)

/*
Every record in a GSF file starts with a fixed 8 byte frame followed by the
record payload:

	--------------------------------------------------
	| size(4) | record id(4) | [checksum(4)] | payload |
	--------------------------------------------------

`size` is the payload byte count. The record id packs the record type in its
low bits; the top bit flags an optional checksum word between the id and the
payload. All of it is big endian.
*/
const (
	frameSize    = 8
	checksumSize = 4

	checksumMask = 0x80000000
	reservedMask = 0x7FC00000
	typeMask     = 0x003FFFFF
)

// Reader walks the records of a memory-mapped GSF file front to back. The
// cursor is forward-only and owned by a single caller; there is no seek.
// Buffers returned by NextBuffer borrow the mapping and die with Close.
type Reader struct {
	src    *mmap.File
	data   []byte
	offset int
}

// Open maps the given file read-only and positions the cursor at its first
// record.
func Open(path string) (*Reader, error) {
	src, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening gsf file: %w", err)
	}

	return &Reader{src: src, data: src.Bytes()}, nil
}

// NextBuffer frames the record at the cursor, advances past it and returns
// its payload. It returns io.EOF once the cursor reaches the end of the
// mapped region. A record whose declared size runs past the end of the file
// is a hard failure, not EOF; the stream cannot continue past it.
//
// A record id carrying an unknown type is still framed so callers can skip
// it; its buffer is tagged TypeInvalid.
func (r *Reader) NextBuffer() (*RecordBuffer, error) {
	if r.offset >= len(r.data) {
		return nil, io.EOF
	}

	if len(r.data)-r.offset < frameSize {
		return nil, fmt.Errorf("%w: partial record frame at offset %d", ErrTruncated, r.offset)
	}

	// Read the frame.
	size := binary.BigEndian.Uint32(r.data[r.offset:])
	id := binary.BigEndian.Uint32(r.data[r.offset+4:])
	r.offset += frameSize

	typ := RecordType(id & typeMask)
	if !typ.Valid() {
		typ = TypeInvalid
	}

	// A set checksum flag means one extra word sits before the payload. The
	// checksum value itself is not verified.
	if id&checksumMask != 0 {
		if len(r.data)-r.offset < checksumSize {
			return nil, fmt.Errorf("%w: missing checksum word at offset %d", ErrTruncated, r.offset)
		}
		r.offset += checksumSize
	}

	if uint32(len(r.data)-r.offset) < size {
		return nil, fmt.Errorf("%w: record of %d bytes at offset %d", ErrTruncated, size, r.offset)
	}

	buf := NewRecordBuffer(r.data[r.offset:r.offset+int(size)], typ)
	r.offset += int(size)

	return buf, nil
}

// Close releases the underlying mapping. Buffers produced by this reader
// must not be used afterwards.
func (r *Reader) Close() error {
	r.data = nil
	return r.src.Close()
}
