// Package storage defines the resizable byte-buffer capability that backs
// persistent vectors, together with in-process implementations used for
// ephemeral data and tests. File-backed buffers live in the mmap package.
//
// A Buffer is a single contiguous extent of bytes that can only be resized
// in place. Resizing invalidates every slice previously returned by Bytes;
// callers are expected to re-fetch after any resize and never to hold a view
// across one. Buffers are not safe for concurrent use.
package storage

// Buffer is a contiguous, resizable region of bytes.
//
// Bytes returns the current extent. The same slice serves as both read and
// write view; mutations through it are visible to every other holder and,
// for file-backed buffers, to the underlying file.
//
// Grow extends the buffer to exactly size bytes, zero-filling the new tail.
// Truncate shrinks it to exactly size bytes, discarding the old tail. Both
// reject a size on the wrong side of the current extent, leave the buffer
// unchanged on failure, and invalidate previously returned Bytes slices on
// success. Growing or truncating to the current size is a no-op.
type Buffer interface {
	Bytes() []byte
	Grow(size int) error
	Truncate(size int) error
}
