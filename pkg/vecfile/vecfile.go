// Package vecfile is the one-call way to get a persistent vector: open or
// create the file, map it, attach, and hand back a single handle that closes
// everything.
//
// Example:
//
//	type Sample struct {
//	    Timestamp int64
//	    Value     float64
//	}
//
//	f, err := vecfile.Open[Sample]("samples.vec")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	err = f.Push(Sample{Timestamp: time.Now().UnixNano(), Value: 21.5})
//
// For anything beyond that (read-only inspection, alternative storage
// backends, the format helpers) use the vec and mmap packages directly.
package vecfile

import (
	"fmt"

	"github.com/joshuapare/veckit/mmap"
	"github.com/joshuapare/veckit/vec"
)

// File is a vector attached to a memory-mapped file. The embedded Vec
// carries the record operations; File adds the file lifecycle. Not safe for
// concurrent use, and a single writer per underlying file.
type File[T any] struct {
	*vec.Vec[T]
	m      *mmap.File
	closed bool
}

// Open maps the vector file at path, creating it empty when absent, and
// attaches it as a vector of T. A new or empty file is initialized; an
// existing one must validate or Open fails with the vec corruption error.
func Open[T any](path string, opts ...vec.Option) (*File[T], error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vecfile: open %s: %w", path, err)
	}
	v, err := vec.Attach[T](m, opts...)
	if err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("vecfile: attach %s: %w", path, err)
	}
	return &File[T]{Vec: v, m: m}, nil
}

// Path returns the path the file was opened with.
func (f *File[T]) Path() string {
	return f.m.Path()
}

// Size returns the current file size in bytes.
func (f *File[T]) Size() int64 {
	return f.m.Size()
}

// Sync flushes outstanding writes to stable storage. Without it, durability
// is whatever the OS write-back provides.
func (f *File[T]) Sync() error {
	return f.m.Sync()
}

// Advise hints the kernel about the expected access pattern.
func (f *File[T]) Advise(pattern mmap.AccessPattern) error {
	return f.m.Advise(pattern)
}

// Close syncs, unmaps, and closes the file. The vector must not be used
// afterwards. Closing twice is a no-op.
func (f *File[T]) Close() error {
	if f == nil || f.closed {
		return nil
	}
	f.closed = true
	err := f.m.Sync()
	if closeErr := f.m.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
