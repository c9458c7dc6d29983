package gsf

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frame wraps a payload in the on-disk record frame.
func frame(typ RecordType, payload []byte, withChecksum bool) []byte {
	id := uint32(typ)
	if withChecksum {
		id |= checksumMask
	}

	out := binary.BigEndian.AppendUint32(nil, uint32(len(payload)))
	out = binary.BigEndian.AppendUint32(out, id)
	if withChecksum {
		out = binary.BigEndian.AppendUint32(out, 0)
	}
	return append(out, payload...)
}

// writeGsfFile writes the given pre-framed records to a temp file.
func writeGsfFile(t testing.TB, records ...[]byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.gsf")
	var data []byte
	for _, r := range records {
		data = append(data, r...)
	}
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestReaderWalk(t *testing.T) {
	assert := assert.New(t)

	headerRec := frame(TypeHeader, []byte("GSF-v01.10\x00\x00"), false)
	commentRec := frame(TypeComment, (&wire{}).u32(1).u32(2).u32(5).str("abcde\x00\x00\x00").buf, false)
	pingRec := frame(TypeSwathBathymetryPing, []byte{1, 2, 3, 4}, true)
	unknownRec := frame(RecordType(500), []byte{9, 9}, false)

	path := writeGsfFile(t, headerRec, commentRec, pingRec, unknownRec)

	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()

	t.Run("Header", func(t *testing.T) {
		buf, err := reader.NextBuffer()
		assert.NoError(err)
		assert.Equal(TypeHeader, buf.Type())
		assert.Equal(uint32(12), buf.Size())

		h, err := DecodeHeader(buf)
		assert.NoError(err)
		assert.Equal(1, h.VersionMajor)
		assert.Equal(10, h.VersionMinor)
	})

	t.Run("Comment", func(t *testing.T) {
		buf, err := reader.NextBuffer()
		assert.NoError(err)
		assert.Equal(TypeComment, buf.Type())

		c, err := DecodeComment(buf)
		assert.NoError(err)
		assert.Equal("abcde", c.Text)
	})

	t.Run("ChecksumFlaggedRecord", func(t *testing.T) {
		// The checksum word is framed past; the payload starts after it.
		buf, err := reader.NextBuffer()
		assert.NoError(err)
		assert.Equal(TypeSwathBathymetryPing, buf.Type())
		assert.Equal(uint32(4), buf.Size())
	})

	t.Run("UnknownTypeTaggedInvalid", func(t *testing.T) {
		buf, err := reader.NextBuffer()
		assert.NoError(err)
		assert.Equal(TypeInvalid, buf.Type())
		assert.Equal(uint32(2), buf.Size())
	})

	t.Run("EndOfStream", func(t *testing.T) {
		buf, err := reader.NextBuffer()
		assert.Nil(buf)
		assert.ErrorIs(err, io.EOF)

		// Exhausted stays exhausted.
		_, err = reader.NextBuffer()
		assert.ErrorIs(err, io.EOF)
	})
}

func TestReaderEmptyFile(t *testing.T) {
	assert := assert.New(t)

	reader, err := Open(writeGsfFile(t))
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.NextBuffer()
	assert.ErrorIs(err, io.EOF)
}

func TestReaderTruncatedPayload(t *testing.T) {
	assert := assert.New(t)

	// Declared payload size runs past the end of the file.
	rec := frame(TypeComment, []byte("abc"), false)
	binary.BigEndian.PutUint32(rec[0:], 100)

	reader, err := Open(writeGsfFile(t, rec))
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.NextBuffer()
	assert.ErrorIs(err, ErrTruncated)
}

func TestReaderPartialFrame(t *testing.T) {
	assert := assert.New(t)

	reader, err := Open(writeGsfFile(t, []byte{0x00, 0x00, 0x00}))
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.NextBuffer()
	assert.ErrorIs(err, ErrTruncated)
}

func TestReaderMissingChecksumWord(t *testing.T) {
	assert := assert.New(t)

	// Checksum flag set but the file ends right after the frame.
	rec := frame(TypeComment, nil, true)[:frameSize]

	reader, err := Open(writeGsfFile(t, rec))
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.NextBuffer()
	assert.ErrorIs(err, ErrTruncated)
}

func TestOpenMissingFile(t *testing.T) {
	reader, err := Open(filepath.Join(t.TempDir(), "nope.gsf"))
	assert.Nil(t, reader)
	assert.Error(t, err)
}
