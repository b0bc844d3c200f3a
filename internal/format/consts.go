// Package format houses the on-disk layout of vector files. The goal is to
// keep signatures, offsets, and field codecs in one place, independent from
// the public API, so higher-level packages stay free of byte arithmetic.
package format

// Magic is the eight-byte signature at the start of every vector file.
// The trailing digit is the format version.
// Layout:
//
//	0x00  'V' 'E' 'C' 'F' 'I' 'L' 'E' '1'
var Magic = []byte{'V', 'E', 'C', 'F', 'I', 'L', 'E', '1'}

const (
	// MagicOffset is the offset of the signature within the header.
	MagicOffset = 0x00

	// MagicSize is the size of the signature in bytes.
	MagicSize = 8

	// LengthOffset is the offset of the live record count (uint64 LE).
	LengthOffset = 0x08

	// CapacityOffset is the offset of the allocated slot count (uint64 LE).
	CapacityOffset = 0x10

	// HeaderSize is the size of the file header in bytes. Record slots are
	// densely packed immediately after the header, each exactly one record
	// wide, so a well-formed file is HeaderSize + capacity*recordSize bytes.
	HeaderSize = 0x18
)

// derived lengths.
const (
	LengthLen   = CapacityOffset - LengthOffset // 0x08
	CapacityLen = HeaderSize - CapacityOffset   // 0x08
)
