// Package mmap provides file-backed and anonymous memory-mapped buffers
// that satisfy the storage.Buffer capability.
//
// File maps a file read-write and shared, so every write through Bytes is a
// write to the page cache and reaches the file without an explicit copy.
// Resizing follows the unmap, ftruncate, remap protocol: the OS zero-fills
// extensions, and a failed resize restores the previous mapping on a best
// effort basis. Durability beyond OS write-back is opt-in through Sync.
//
// On platforms without mmap support the same API is served by a heap buffer
// that is read on open and written back on Sync and Close.
package mmap

import "errors"

// AccessPattern hints to the kernel how the mapped region will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed
)

var (
	// ErrClosed is returned when operating on a closed buffer.
	ErrClosed = errors.New("mmap: closed")
	// ErrReadOnly is returned when a read-only mapping is asked to resize.
	ErrReadOnly = errors.New("mmap: mapping is read-only")
)
