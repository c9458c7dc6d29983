package gsf

import "time"

// navErrorSize is the fixed size of a navigation-error record.
const navErrorSize = 20

// NavigationError is the navigation-error record (type 8): estimated
// longitude/latitude error for one ping, in meters.
type NavigationError struct {
	Time           time.Time
	RecordID       int32
	LongitudeError float64
	LatitudeError  float64
}

// DecodeNavigationError decodes a navigation-error record. The wire stores
// the errors as integers in tenths of a meter.
func DecodeNavigationError(buf *RecordBuffer) (*NavigationError, error) {
	if buf.Size() != navErrorSize {
		return nil, ErrBadSize
	}

	when, err := timestampAt(buf, 0)
	if err != nil {
		return nil, err
	}

	id, err := buf.Int32(8)
	if err != nil {
		return nil, err
	}
	lonErr, err := buf.Int32(12)
	if err != nil {
		return nil, err
	}
	latErr, err := buf.Int32(16)
	if err != nil {
		return nil, err
	}

	return &NavigationError{
		Time:           when,
		RecordID:       id,
		LongitudeError: float64(lonErr) / 10,
		LatitudeError:  float64(latErr) / 10,
	}, nil
}

// hvNavErrorBase is the fixed part of an HV navigation-error record before
// the position-type text.
const hvNavErrorBase = 26

// HVNavigationError is the horizontal/vertical navigation-error record
// (type 11), the modern replacement for NavigationError.
type HVNavigationError struct {
	Time            time.Time
	RecordID        int32
	HorizontalError float64
	VerticalError   float64
	SEPUncertainty  float64
	PositionType    string
}

// DecodeHVNavigationError decodes an HV navigation-error record. Horizontal
// and vertical errors are stored in millimeters, the SEP uncertainty in
// centimeters; the record ends with a length-prefixed position-type code.
func DecodeHVNavigationError(buf *RecordBuffer) (*HVNavigationError, error) {
	when, err := timestampAt(buf, 0)
	if err != nil {
		return nil, err
	}

	id, err := buf.Int32(8)
	if err != nil {
		return nil, err
	}
	hErr, err := buf.Int32(12)
	if err != nil {
		return nil, err
	}
	vErr, err := buf.Int32(16)
	if err != nil {
		return nil, err
	}
	sep, err := buf.Uint16(20)
	if err != nil {
		return nil, err
	}

	// Two spare bytes sit at [22,24).
	posLen, err := buf.Uint16(24)
	if err != nil {
		return nil, err
	}

	var posType string
	if posLen > 0 {
		posType, err = buf.Text(hvNavErrorBase, uint32(posLen))
		if err != nil {
			return nil, err
		}
	}

	return &HVNavigationError{
		Time:            when,
		RecordID:        id,
		HorizontalError: float64(hErr) / 1000,
		VerticalError:   float64(vErr) / 1000,
		SEPUncertainty:  float64(sep) / 100,
		PositionType:    posType,
	}, nil
}
