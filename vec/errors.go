package vec

import "errors"

var (
	// ErrBadMagic indicates the buffer does not start with the vector file
	// signature.
	ErrBadMagic = errors.New("vec: bad magic")
	// ErrSizeMismatch indicates the header and the buffer size disagree, or
	// the record region is not a whole number of records.
	ErrSizeMismatch = errors.New("vec: size mismatch")
	// ErrAlignment indicates the record region is not aligned for the record
	// type.
	ErrAlignment = errors.New("vec: misaligned record region")
	// ErrIndexOutOfRange indicates an index outside the live records.
	ErrIndexOutOfRange = errors.New("vec: index out of range")
	// ErrCapacityOverflow indicates a capacity whose byte size does not fit
	// in int.
	ErrCapacityOverflow = errors.New("vec: capacity overflow")
	// ErrInvalidRecord indicates a record type the format cannot store.
	ErrInvalidRecord = errors.New("vec: invalid record type")
)
