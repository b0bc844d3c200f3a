package vec

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/veckit/internal/format"
)

// HeaderSize is the size of a vector file header in bytes. Record slots
// start at this offset.
const HeaderSize = format.HeaderSize

// Header is a read-only view of a vector file header.
// Zero-copy: all accessors read directly from h.raw.
type Header struct {
	raw []byte // len >= format.HeaderSize
}

// isMagic is a fast, zero-alloc check for the file signature.
func isMagic(b []byte) bool {
	const off = format.MagicOffset
	const n = format.MagicSize
	if len(b) < off+n {
		return false
	}
	return bytes.Equal(b[off:off+n], format.Magic)
}

// ParseHeader validates the signature and returns a header view.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < format.HeaderSize {
		return Header{}, fmt.Errorf("vec: %d bytes is shorter than the %d-byte header: %w",
			len(b), format.HeaderSize, ErrSizeMismatch)
	}
	if !isMagic(b) {
		return Header{}, fmt.Errorf("vec: signature %q: %w", b[:format.MagicSize], ErrBadMagic)
	}
	return Header{raw: b[:format.HeaderSize]}, nil
}

// Magic returns the signature bytes.
func (h Header) Magic() []byte {
	return h.raw[format.MagicOffset : format.MagicOffset+format.MagicSize]
}

// Length returns the live record count.
func (h Header) Length() uint64 { return format.ReadU64(h.raw, format.LengthOffset) }

// Capacity returns the allocated slot count.
func (h Header) Capacity() uint64 { return format.ReadU64(h.raw, format.CapacityOffset) }

// Validate checks the structural invariants of a vector file image against a
// known record size: a whole number of record slots after the header, a
// capacity field that accounts for exactly the bytes present, and a length
// within capacity. It reports the first violation.
func Validate(b []byte, recordSize int) error {
	if recordSize <= 0 {
		return fmt.Errorf("vec: record size %d: %w", recordSize, ErrInvalidRecord)
	}
	h, err := ParseHeader(b)
	if err != nil {
		return err
	}

	payload := len(b) - format.HeaderSize
	if payload%recordSize != 0 {
		return fmt.Errorf("vec: %d payload bytes is not a whole number of %d-byte records: %w",
			payload, recordSize, ErrSizeMismatch)
	}
	if capacity := h.Capacity(); capacity != uint64(payload/recordSize) {
		return fmt.Errorf("vec: header capacity %d disagrees with %d payload bytes of %d-byte records: %w",
			capacity, payload, recordSize, ErrSizeMismatch)
	}
	if length, capacity := h.Length(), h.Capacity(); length > capacity {
		return fmt.Errorf("vec: header length %d exceeds capacity %d: %w", length, capacity, ErrSizeMismatch)
	}
	return nil
}

// Stats summarizes a vector file image without knowing its record type.
type Stats struct {
	Length     int // live records
	Capacity   int // allocated record slots
	RecordSize int // derived bytes per record; 0 when capacity is 0
	FileSize   int // total bytes including the header
}

// ReadStats derives Stats from a vector file image. The record size falls
// out of the byte count and the capacity field, so corruption that Validate
// would catch with a known record size is reported here too.
func ReadStats(b []byte) (Stats, error) {
	h, err := ParseHeader(b)
	if err != nil {
		return Stats{}, err
	}

	length, capacity := h.Length(), h.Capacity()
	if length > capacity {
		return Stats{}, fmt.Errorf("vec: header length %d exceeds capacity %d: %w", length, capacity, ErrSizeMismatch)
	}

	payload := uint64(len(b) - format.HeaderSize)
	if capacity == 0 {
		if payload != 0 {
			return Stats{}, fmt.Errorf("vec: %d payload bytes with zero capacity: %w", payload, ErrSizeMismatch)
		}
		return Stats{FileSize: len(b)}, nil
	}
	if payload < capacity || payload%capacity != 0 {
		return Stats{}, fmt.Errorf("vec: %d payload bytes is not a whole multiple of capacity %d: %w",
			payload, capacity, ErrSizeMismatch)
	}

	return Stats{
		Length:     int(length),
		Capacity:   int(capacity),
		RecordSize: int(payload / capacity),
		FileSize:   len(b),
	}, nil
}
