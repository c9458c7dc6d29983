package gsf

import "errors"

var (
	ErrShortBuffer = errors.New("read past end of record buffer")
	ErrTruncated   = errors.New("record extends past end of file")
	ErrBadSize     = errors.New("record has wrong size for its type")
	ErrBadMagic    = errors.New("missing GSF magic text in header record")
	ErrBadVersion  = errors.New("malformed version text in header record")
)
