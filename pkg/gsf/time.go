package gsf

import "time"

// ToTimePoint builds a UTC point in time from the (seconds, nanoseconds)
// pair records store their timestamps as. Negative seconds (pre-epoch) are
// accepted.
func ToTimePoint(sec, nsec int64) time.Time {
	return time.Unix(sec, nsec).UTC()
}

// ToSeconds returns t as fractional seconds since the epoch, with the
// nanosecond part folded into the fraction.
func ToSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// timestampAt reads the leading (sec, nsec) pair that most record types
// start with.
func timestampAt(buf *RecordBuffer, start uint32) (time.Time, error) {
	sec, err := buf.Uint32(start)
	if err != nil {
		return time.Time{}, err
	}
	nsec, err := buf.Uint32(start + 4)
	if err != nil {
		return time.Time{}, err
	}
	return ToTimePoint(int64(sec), int64(nsec)), nil
}
