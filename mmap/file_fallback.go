//go:build !unix

package mmap

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/veckit/storage"
)

// File is the fallback for platforms without mmap. The file's bytes live in
// a heap buffer that is read on open and written back on Sync and Close, so
// writes are not visible in the file until one of those runs.
type File struct {
	f    *os.File
	path string
	data []byte
	size int64
	ro   bool
}

var _ storage.Buffer = (*File)(nil)

// Open loads the file at path into memory, creating it when absent.
func Open(path string) (*File, error) {
	return open(path, false)
}

// OpenReadOnly loads the file at path for inspection. Grow and Truncate
// return ErrReadOnly.
func OpenReadOnly(path string) (*File, error) {
	return open(path, true)
}

func open(path string, ro bool) (*File, error) {
	var (
		f   *os.File
		err error
	)
	if ro {
		f, err = os.Open(path)
	} else {
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	}
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	size := st.Size()
	if size > int64(^uint(0)>>1) {
		_ = f.Close()
		return nil, fmt.Errorf("mmap: file too large to load (%d bytes)", size)
	}

	var data []byte
	if size > 0 {
		data = make([]byte, size)
		if _, err := io.ReadFull(f, data); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("mmap: read %s: %w", path, err)
		}
	}
	return &File{f: f, path: path, data: data, size: size, ro: ro}, nil
}

// Bytes returns the buffered extent. The slice is invalidated by Grow,
// Truncate, and Close.
func (f *File) Bytes() []byte {
	return f.data
}

// Size returns the current file size in bytes.
func (f *File) Size() int64 {
	return f.size
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Grow extends the file to exactly size bytes, zero-filling the extension.
func (f *File) Grow(size int) error {
	if f == nil || f.f == nil {
		return ErrClosed
	}
	if f.ro {
		return ErrReadOnly
	}
	if size < 0 {
		return fmt.Errorf("mmap: grow to negative size %d", size)
	}
	if int64(size) < f.size {
		return fmt.Errorf("mmap: grow from %d to %d bytes would shrink", f.size, size)
	}
	if int64(size) == f.size {
		return nil
	}

	// Extend the file first so a failure leaves the buffer untouched.
	if err := f.f.Truncate(int64(size)); err != nil {
		return fmt.Errorf("mmap: resize file to %d bytes: %w", size, err)
	}
	grown := make([]byte, size)
	copy(grown, f.data)
	f.data = grown
	f.size = int64(size)
	return nil
}

// Truncate shrinks the file to exactly size bytes.
func (f *File) Truncate(size int) error {
	if f == nil || f.f == nil {
		return ErrClosed
	}
	if f.ro {
		return ErrReadOnly
	}
	if size < 0 {
		return fmt.Errorf("mmap: truncate to negative size %d", size)
	}
	if int64(size) > f.size {
		return fmt.Errorf("mmap: truncate from %d to %d bytes would grow", f.size, size)
	}
	if int64(size) == f.size {
		return nil
	}

	if err := f.f.Truncate(int64(size)); err != nil {
		return fmt.Errorf("mmap: resize file to %d bytes: %w", size, err)
	}
	if size == 0 {
		f.data = nil
	} else {
		shrunk := make([]byte, size)
		copy(shrunk, f.data[:size])
		f.data = shrunk
	}
	f.size = int64(size)
	return nil
}

// Sync writes the buffer back to the file and flushes it.
func (f *File) Sync() error {
	if f == nil || f.f == nil {
		return ErrClosed
	}
	if f.ro {
		return nil
	}
	if len(f.data) > 0 {
		if _, err := f.f.WriteAt(f.data, 0); err != nil {
			return fmt.Errorf("mmap: write back: %w", err)
		}
	}
	if err := f.f.Sync(); err != nil {
		return fmt.Errorf("mmap: flush file: %w", err)
	}
	return nil
}

// Advise is a no-op without a real mapping.
func (f *File) Advise(AccessPattern) error {
	if f == nil || f.f == nil {
		return ErrClosed
	}
	return nil
}

// Close writes the buffer back and closes the file. Closing a closed File
// is a no-op.
func (f *File) Close() error {
	if f == nil || f.f == nil {
		return nil
	}
	var err error
	if !f.ro {
		err = f.Sync()
	}
	if closeErr := f.f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	f.f = nil
	f.data = nil
	return err
}
