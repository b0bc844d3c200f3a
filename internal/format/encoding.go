package format

import "encoding/binary"

// Binary encoding utilities for header fields.
//
// Header integers are fixed-width little-endian regardless of host byte
// order, so files move between machines of either endianness. Record bytes
// are outside this package's remit.
//
// encoding/binary is used directly; the compiler inlines the LittleEndian
// calls, so unsafe variants would add risk without measurable benefit.

// PutU64 writes a uint64 value to the buffer at the specified offset in little-endian format.
func PutU64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}

// ReadU64 reads a uint64 value from the buffer at the specified offset in little-endian format.
func ReadU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}
