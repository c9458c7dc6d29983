package gsf

import "time"

// commentBase is the fixed part of a comment record before the text bytes.
const commentBase = 12

// Comment is the comment record (type 6): a free-form annotation with the
// time it was made.
type Comment struct {
	Time time.Time
	Text string
}

// DecodeComment decodes a comment record: a (sec, nsec) timestamp pair, the
// comment byte length and the comment text. The declared length must fit
// inside the payload; trailing padding past the declared length is ignored.
func DecodeComment(buf *RecordBuffer) (*Comment, error) {
	when, err := timestampAt(buf, 0)
	if err != nil {
		return nil, err
	}

	length, err := buf.Uint32(8)
	if err != nil {
		return nil, err
	}

	text, err := buf.Text(commentBase, length)
	if err != nil {
		return nil, err
	}

	return &Comment{Time: when, Text: text}, nil
}
