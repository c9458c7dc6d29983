package gsf

import "time"

// History is the history record (type 7): one entry of the processing
// history trail, recording who ran what on which host.
type History struct {
	Time     time.Time
	Host     string
	Operator string
	Command  string
	Comment  string
}

// DecodeHistory decodes a history record: a (sec, nsec) timestamp followed
// by four length-prefixed null-terminated strings.
func DecodeHistory(buf *RecordBuffer) (*History, error) {
	when, err := timestampAt(buf, 0)
	if err != nil {
		return nil, err
	}

	offset := uint32(8)
	fields := make([]string, 4)
	for i := range fields {
		fields[i], err = prefixedText(buf, &offset)
		if err != nil {
			return nil, err
		}
	}

	return &History{
		Time:     when,
		Host:     fields[0],
		Operator: fields[1],
		Command:  fields[2],
		Comment:  fields[3],
	}, nil
}

// prefixedText reads a 16-bit length prefix at *offset, then that many bytes
// of null-terminated text, advancing *offset past both.
func prefixedText(buf *RecordBuffer, offset *uint32) (string, error) {
	size, err := buf.Int16(*offset)
	if err != nil {
		return "", err
	}
	if size < 0 {
		return "", ErrShortBuffer
	}
	*offset += 2

	if size == 0 {
		return "", nil
	}

	text, err := buf.Text(*offset, uint32(size))
	if err != nil {
		return "", err
	}
	*offset += uint32(size)

	return text, nil
}
