//go:build !unix

package mmap

import (
	"fmt"

	"github.com/joshuapare/veckit/storage"
)

// Anon is the fallback anonymous buffer for platforms without mmap; it is an
// ordinary heap allocation behind the same API.
type Anon struct {
	data   []byte
	closed bool
}

var _ storage.Buffer = (*Anon)(nil)

// NewAnon returns an anonymous buffer of size bytes, zero-filled.
func NewAnon(size int) (*Anon, error) {
	if size < 0 {
		return nil, fmt.Errorf("mmap: anonymous mapping of negative size %d", size)
	}
	a := &Anon{}
	if size > 0 {
		a.data = make([]byte, size)
	}
	return a, nil
}

// Bytes returns the current extent.
func (a *Anon) Bytes() []byte {
	return a.data
}

// Grow extends the buffer to exactly size bytes, zero-filling the tail.
func (a *Anon) Grow(size int) error {
	if a == nil || a.closed {
		return ErrClosed
	}
	if size < 0 {
		return fmt.Errorf("mmap: grow to negative size %d", size)
	}
	if size < len(a.data) {
		return fmt.Errorf("mmap: grow from %d to %d bytes would shrink", len(a.data), size)
	}
	if size == len(a.data) {
		return nil
	}
	grown := make([]byte, size)
	copy(grown, a.data)
	a.data = grown
	return nil
}

// Truncate shrinks the buffer to exactly size bytes.
func (a *Anon) Truncate(size int) error {
	if a == nil || a.closed {
		return ErrClosed
	}
	if size < 0 {
		return fmt.Errorf("mmap: truncate to negative size %d", size)
	}
	if size > len(a.data) {
		return fmt.Errorf("mmap: truncate from %d to %d bytes would grow", len(a.data), size)
	}
	if size == len(a.data) {
		return nil
	}
	if size == 0 {
		a.data = nil
		return nil
	}
	shrunk := make([]byte, size)
	copy(shrunk, a.data[:size])
	a.data = shrunk
	return nil
}

// Close releases the buffer. Closing a closed Anon is a no-op.
func (a *Anon) Close() error {
	if a == nil || a.closed {
		return nil
	}
	a.closed = true
	a.data = nil
	return nil
}
