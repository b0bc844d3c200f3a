//go:build unix

package mmap

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/veckit/storage"
)

// Anon is an anonymous, file-less mapping. It keeps records outside the Go
// heap, which suits scratch vectors that should not add to GC scanning work.
// Resizing maps a fresh region and copies, so unlike File it briefly holds
// both extents.
type Anon struct {
	data   []byte
	closed bool
}

var _ storage.Buffer = (*Anon)(nil)

// NewAnon returns an anonymous mapping of size bytes, zero-filled.
func NewAnon(size int) (*Anon, error) {
	if size < 0 {
		return nil, fmt.Errorf("mmap: anonymous mapping of negative size %d", size)
	}
	a := &Anon{}
	if size > 0 {
		data, err := mapAnon(size)
		if err != nil {
			return nil, fmt.Errorf("mmap: map anonymous region: %w", err)
		}
		a.data = data
	}
	return a, nil
}

// Bytes returns the mapped extent. The slice is invalidated by Grow,
// Truncate, and Close.
func (a *Anon) Bytes() []byte {
	return a.data
}

// Grow extends the mapping to exactly size bytes, zero-filling the tail.
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
	return a.remap(size)
}

// Truncate shrinks the mapping to exactly size bytes.
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
	return a.remap(size)
}

// remap maps a fresh region, copies the surviving prefix, and releases the
// old one. A mapping failure leaves the current region intact.
func (a *Anon) remap(size int) error {
	var data []byte
	if size > 0 {
		var err error
		data, err = mapAnon(size)
		if err != nil {
			return fmt.Errorf("mmap: map anonymous region: %w", err)
		}
		copy(data, a.data)
	}
	if a.data != nil {
		if err := unix.Munmap(a.data); err != nil {
			_ = unix.Munmap(data)
			return fmt.Errorf("mmap: unmap old region: %w", err)
		}
	}
	a.data = data
	return nil
}

// Close releases the mapping. Closing a closed Anon is a no-op.
func (a *Anon) Close() error {
	if a == nil || a.closed {
		return nil
	}
	a.closed = true
	if a.data == nil {
		return nil
	}
	data := a.data
	a.data = nil
	return unix.Munmap(data)
}

func mapAnon(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}
