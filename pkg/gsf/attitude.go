package gsf

import "time"

const (
	// attitudeBase is the fixed part of an attitude record before the
	// measurements.
	attitudeBase = 10
	// attitudeMeasurementSize is the wire size of one measurement: five
	// 2-byte fields.
	attitudeMeasurementSize = 10
)

// AttitudeMeasurement is one vessel attitude sample within an attitude
// record. Angles are in degrees, heave in meters.
type AttitudeMeasurement struct {
	Time    time.Time
	Pitch   float64
	Roll    float64
	Heave   float64
	Heading float64
}

// Attitude is the attitude record (type 12): a short burst of vessel motion
// samples relative to a base time.
type Attitude struct {
	Time         time.Time
	Measurements []AttitudeMeasurement
}

// DecodeAttitude decodes an attitude record. Each measurement stores a
// millisecond offset from the base time and centidegree/centimeter scaled
// fields.
func DecodeAttitude(buf *RecordBuffer) (*Attitude, error) {
	base, err := timestampAt(buf, 0)
	if err != nil {
		return nil, err
	}

	count, err := buf.Int16(8)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrShortBuffer
	}

	if uint32(count) > (buf.Size()-attitudeBase)/attitudeMeasurementSize {
		return nil, ErrShortBuffer
	}

	att := &Attitude{
		Time:         base,
		Measurements: make([]AttitudeMeasurement, 0, count),
	}

	for i := uint32(0); i < uint32(count); i++ {
		start := attitudeBase + i*attitudeMeasurementSize

		timeOff, err := buf.Int16(start)
		if err != nil {
			return nil, err
		}
		pitch, err := buf.Int16(start + 2)
		if err != nil {
			return nil, err
		}
		roll, err := buf.Int16(start + 4)
		if err != nil {
			return nil, err
		}
		heave, err := buf.Int16(start + 6)
		if err != nil {
			return nil, err
		}
		heading, err := buf.Uint16(start + 8)
		if err != nil {
			return nil, err
		}

		att.Measurements = append(att.Measurements, AttitudeMeasurement{
			Time:    base.Add(time.Duration(timeOff) * time.Millisecond),
			Pitch:   float64(pitch) / 100,
			Roll:    float64(roll) / 100,
			Heave:   float64(heave) / 100,
			Heading: float64(heading) / 100,
		})
	}

	return att, nil
}
