// Package gsf reads Generic Sensor Format (GSF) sonar survey files: a
// sequential container of typed, length-delimited binary records. A Reader
// frames raw records out of a memory-mapped file and per-type Decode
// functions turn them into typed values.
package gsf

// RecordType identifies the kind of a record inside a GSF file. The values
// are the wire values stored in each record's id word.
type RecordType uint32

const (
	// TypeInvalid marks an unrecognized or absent record type.
	TypeInvalid RecordType = iota
	TypeHeader
	TypeSwathBathymetryPing
	TypeSoundVelocityProfile
	TypeProcessingParameters
	TypeSensorParameters
	TypeComment
	TypeHistory
	TypeNavigationError
	TypeSwathBathySummary
	TypeSingleBeamPing
	TypeHVNavigationError
	TypeAttitude

	numRecordTypes
)

var recordNames = [numRecordTypes]string{
	TypeInvalid:              "INVALID",
	TypeHeader:               "HEADER",
	TypeSwathBathymetryPing:  "SWATH_BATHYMETRY_PING",
	TypeSoundVelocityProfile: "SOUND_VELOCITY_PROFILE",
	TypeProcessingParameters: "PROCESSING_PARAMETERS",
	TypeSensorParameters:     "SENSOR_PARAMETERS",
	TypeComment:              "COMMENT",
	TypeHistory:              "HISTORY",
	TypeNavigationError:      "NAVIGATION_ERROR",
	TypeSwathBathySummary:    "SWATH_BATHY_SUMMARY",
	TypeSingleBeamPing:       "SINGLE_BEAM_PING",
	TypeHVNavigationError:    "HV_NAVIGATION_ERROR",
	TypeAttitude:             "ATTITUDE",
}

// String returns the canonical display name of the record type.
func (t RecordType) String() string {
	if t >= numRecordTypes {
		return recordNames[TypeInvalid]
	}
	return recordNames[t]
}

// Valid reports whether t is one of the known record types.
func (t RecordType) Valid() bool {
	return t > TypeInvalid && t < numRecordTypes
}
