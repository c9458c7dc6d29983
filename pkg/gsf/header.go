package gsf

// headerSize is the fixed size of a file-header record: "GSF-vMM.mm" plus
// two reserved bytes.
const headerSize = 12

// Header is the file-header record (type 1), always the first record of a
// well-formed GSF file.
type Header struct {
	VersionMajor int
	VersionMinor int
}

// DecodeHeader validates and decodes a file-header record. The payload must
// be exactly 12 bytes laid out as `GSF-vMM.mm` with two-digit major and
// minor versions; the two trailing bytes are reserved and not validated.
func DecodeHeader(buf *RecordBuffer) (*Header, error) {
	if buf.Size() != headerSize {
		return nil, ErrBadSize
	}

	magic, err := buf.Text(0, 4)
	if err != nil {
		return nil, err
	}
	if magic != "GSF-" {
		return nil, ErrBadMagic
	}

	version, err := buf.Text(4, 6)
	if err != nil {
		return nil, err
	}
	if len(version) != 6 || version[0] != 'v' || version[3] != '.' {
		return nil, ErrBadVersion
	}

	major, ok := twoDigits(version[1], version[2])
	if !ok {
		return nil, ErrBadVersion
	}
	minor, ok := twoDigits(version[4], version[5])
	if !ok {
		return nil, ErrBadVersion
	}

	return &Header{VersionMajor: major, VersionMinor: minor}, nil
}

// twoDigits parses a pair of ASCII decimal digits.
func twoDigits(hi, lo byte) (int, bool) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}
