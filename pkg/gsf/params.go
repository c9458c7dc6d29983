package gsf

import "time"

// ProcessingParameters is the processing-parameters record (type 4): the
// "KEYWORD=VALUE" parameter text blocks describing how the data was
// processed.
type ProcessingParameters struct {
	Time       time.Time
	Parameters []string
}

// DecodeProcessingParameters decodes a processing-parameters record: a
// (sec, nsec) timestamp, a parameter count, then per parameter a 16-bit size
// and that many bytes of null-terminated text.
func DecodeProcessingParameters(buf *RecordBuffer) (*ProcessingParameters, error) {
	when, err := timestampAt(buf, 0)
	if err != nil {
		return nil, err
	}

	count, err := buf.Uint16(8)
	if err != nil {
		return nil, err
	}

	params := make([]string, 0, count)
	offset := uint32(10)
	for i := uint16(0); i < count; i++ {
		size, err := buf.Uint16(offset)
		if err != nil {
			return nil, err
		}
		offset += 2

		text, err := buf.Text(offset, uint32(size))
		if err != nil {
			return nil, err
		}
		offset += uint32(size)

		params = append(params, text)
	}

	return &ProcessingParameters{Time: when, Parameters: params}, nil
}
