package storage

import "fmt"

// Heap is a Buffer backed by ordinary heap memory. It is the portable
// backend for ephemeral vectors and the workhorse of tests. The zero value
// is an empty buffer ready for use.
type Heap struct {
	data []byte
}

var _ Buffer = (*Heap)(nil)

// NewHeap returns a Heap seeded with data. The buffer takes ownership of the
// slice; callers must not retain it.
func NewHeap(data []byte) *Heap {
	return &Heap{data: data}
}

// Bytes returns the current extent.
func (h *Heap) Bytes() []byte {
	return h.data
}

// Grow extends the buffer to exactly size bytes. The new tail reads as
// zeros, including bytes shed by an earlier Truncate.
func (h *Heap) Grow(size int) error {
	switch {
	case size < 0:
		return fmt.Errorf("storage: grow to negative size %d", size)
	case size < len(h.data):
		return fmt.Errorf("storage: grow from %d to %d bytes would shrink", len(h.data), size)
	case size == len(h.data):
		return nil
	}
	grown := make([]byte, size)
	copy(grown, h.data)
	h.data = grown
	return nil
}

// Truncate shrinks the buffer to exactly size bytes.
func (h *Heap) Truncate(size int) error {
	switch {
	case size < 0:
		return fmt.Errorf("storage: truncate to negative size %d", size)
	case size > len(h.data):
		return fmt.Errorf("storage: truncate from %d to %d bytes would grow", len(h.data), size)
	case size == len(h.data):
		return nil
	}
	h.data = h.data[:size]
	return nil
}
