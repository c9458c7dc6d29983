package gsf

import "time"

// svpBase is the fixed part of a sound-velocity-profile record before the
// (depth, sound speed) points.
const svpBase = 28

// SoundVelocityProfile is the sound-velocity-profile record (type 3): a
// column of (depth, sound speed) samples observed at one position.
type SoundVelocityProfile struct {
	ObservationTime time.Time
	ApplicationTime time.Time
	Longitude       float64
	Latitude        float64
	Depths          []float64
	SoundSpeeds     []float64
}

// DecodeSoundVelocityProfile decodes a sound-velocity-profile record.
// Position is stored in 1e-7 degree units, depths and sound speeds in
// centimeter/centimeter-per-second units.
func DecodeSoundVelocityProfile(buf *RecordBuffer) (*SoundVelocityProfile, error) {
	observed, err := timestampAt(buf, 0)
	if err != nil {
		return nil, err
	}
	applied, err := timestampAt(buf, 8)
	if err != nil {
		return nil, err
	}

	lon, err := buf.Int32(16)
	if err != nil {
		return nil, err
	}
	lat, err := buf.Int32(20)
	if err != nil {
		return nil, err
	}

	points, err := buf.Uint32(24)
	if err != nil {
		return nil, err
	}

	// Each point is a (depth, sound speed) pair of 4-byte values; reject a
	// count that does not fit the payload before allocating.
	if points > (buf.Size()-svpBase)/8 {
		return nil, ErrShortBuffer
	}

	svp := &SoundVelocityProfile{
		ObservationTime: observed,
		ApplicationTime: applied,
		Longitude:       float64(lon) / 1e7,
		Latitude:        float64(lat) / 1e7,
		Depths:          make([]float64, 0, points),
		SoundSpeeds:     make([]float64, 0, points),
	}

	for i := uint32(0); i < points; i++ {
		depth, err := buf.Uint32(svpBase + 8*i)
		if err != nil {
			return nil, err
		}
		speed, err := buf.Uint32(svpBase + 8*i + 4)
		if err != nil {
			return nil, err
		}
		svp.Depths = append(svp.Depths, float64(depth)/100)
		svp.SoundSpeeds = append(svp.SoundSpeeds, float64(speed)/100)
	}

	return svp, nil
}
