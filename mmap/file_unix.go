//go:build unix

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/veckit/storage"
)

// File is a memory-mapped file. Writes through Bytes mutate the file in
// place; Grow and Truncate resize it. A File is not safe for concurrent use.
type File struct {
	f    *os.File
	path string
	data []byte
	size int64
	ro   bool
}

var _ storage.Buffer = (*File)(nil)

// Open maps the file at path read-write and shared, creating it when absent.
// An empty file yields a valid File whose Bytes is nil until the first Grow.
func Open(path string) (*File, error) {
	return open(path, false)
}

// OpenReadOnly maps the file at path for inspection. Grow and Truncate
// return ErrReadOnly, so the file can never be created or mutated through
// the returned File.
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
		return nil, fmt.Errorf("mmap: file too large to map (%d bytes)", size)
	}

	m := &File{f: f, path: path, size: size, ro: ro}
	if size > 0 {
		data, err := m.mapAt(size)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("mmap: map %s: %w", path, err)
		}
		m.data = data
	}
	return m, nil
}

// Bytes returns the mapped extent. The slice is invalidated by Grow,
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

// Grow extends the file to exactly size bytes and remaps it. The OS
// zero-fills the extension.
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
	return f.remap(int64(size))
}

// Truncate shrinks the file to exactly size bytes and remaps it. Truncating
// to zero leaves the File open with a nil extent.
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
	return f.remap(int64(size))
}

// remap is the resize protocol: unmap, resize the file, map at the new size.
// On failure it restores a mapping at the old size on a best-effort basis so
// the File stays usable; either way the caller's old views are invalid.
func (f *File) remap(newSize int64) error {
	if f.data != nil {
		if err := unix.Munmap(f.data); err != nil {
			return fmt.Errorf("mmap: unmap before resize: %w", err)
		}
		f.data = nil
	}

	if err := f.f.Truncate(newSize); err != nil {
		f.data, _ = f.mapAt(f.size)
		return fmt.Errorf("mmap: resize file to %d bytes: %w", newSize, err)
	}

	data, err := f.mapAt(newSize)
	if err != nil {
		f.data, _ = f.mapAt(f.size)
		return fmt.Errorf("mmap: map after resize: %w", err)
	}

	f.data = data
	f.size = newSize
	return nil
}

func (f *File) mapAt(size int64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	prot := unix.PROT_READ
	if !f.ro {
		prot |= unix.PROT_WRITE
	}
	return unix.Mmap(int(f.f.Fd()), 0, int(size), prot, unix.MAP_SHARED)
}

// Sync flushes dirty pages to the file and forces the file to stable
// storage. Without it, durability is whatever the OS write-back gives.
func (f *File) Sync() error {
	if f == nil || f.f == nil {
		return ErrClosed
	}
	if f.ro {
		return nil
	}
	if f.data != nil {
		if err := unix.Msync(f.data, unix.MS_SYNC); err != nil {
			return fmt.Errorf("mmap: msync: %w", err)
		}
	}
	if err := flushFile(int(f.f.Fd())); err != nil {
		return fmt.Errorf("mmap: flush file: %w", err)
	}
	return nil
}

// Advise hints the kernel about the expected access pattern. The hint is
// advisory; alignment rejections are swallowed.
func (f *File) Advise(pattern AccessPattern) error {
	if f == nil || f.f == nil {
		return ErrClosed
	}
	return advise(f.data, pattern)
}

// Close unmaps the region and closes the file. Closing a closed File is a
// no-op.
func (f *File) Close() error {
	if f == nil {
		return nil
	}
	var err error
	if f.data != nil {
		err = unix.Munmap(f.data)
		f.data = nil
	}
	if f.f != nil {
		if closeErr := f.f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		f.f = nil
	}
	return err
}

func advise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}
	var advice int
	switch pattern {
	case AccessSequential:
		advice = unix.MADV_SEQUENTIAL
	case AccessRandom:
		advice = unix.MADV_RANDOM
	case AccessWillNeed:
		advice = unix.MADV_WILLNEED
	case AccessDontNeed:
		advice = unix.MADV_DONTNEED
	default:
		advice = unix.MADV_NORMAL
	}
	err := unix.Madvise(data, advice)
	if err == unix.EINVAL {
		// Alignment rejection; the hint is non-critical.
		return nil
	}
	return err
}
