// Package vec provides a growable array of fixed-size records laid out in a
// contiguous byte buffer, typically a memory-mapped file.
//
// # Overview
//
// A Vec[T] is array semantics over raw bytes: a small validated header
// followed by densely packed record slots, read and written in place with no
// serialization step. Attached to an mmap.File it gives a persistent vector
// whose operations are ordinary memory access; attached to a storage.Heap or
// mmap.Anon it is an ephemeral one.
//
// # File Structure
//
// A vector file consists of a 24-byte header and the record region:
//
//	[magic "VECFILE1" - 8B] [length u64 LE] [capacity u64 LE] [record 0] ... [record cap-1]
//
// Records occupy exactly unsafe.Sizeof(T) bytes each. The buffer is always
// exactly HeaderSize + capacity*recordSize bytes; attach rejects anything
// else as corruption.
//
// # Record Types
//
// T must be a fixed-size, pointer-free type: booleans, integers, floats,
// complex numbers, and arrays or structs of those. Types containing
// pointers, slices, maps, strings, channels, functions, or interfaces are
// rejected at attach, both because the format stores raw bytes and because
// the garbage collector must never trace memory it does not manage. Record
// bytes are T's in-memory representation, so files are portable across
// processes sharing an architecture and type layout; struct padding bytes
// carry unspecified content.
//
// # Attaching
//
//	f, err := mmap.Open("events.vec")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	v, err := vec.Attach[Event](f)
//	if err != nil {
//	    return err
//	}
//	err = v.Push(Event{ID: 1})
//
// A buffer shorter than the header is initialized fresh; anything else must
// carry a valid header or attach fails with ErrBadMagic, ErrSizeMismatch,
// or ErrAlignment.
//
// # Growth
//
// Pushing into a full vector doubles the capacity (one slot from empty), so
// a run of pushes costs amortized constant work per record. Grow and write
// are one step from the caller's view: when the resize fails, length,
// capacity, and the stored bytes are unchanged. Capacity never shrinks
// except through Clear, which truncates the backing storage.
//
// # Borrow Discipline
//
// Get, Slice, and All return views into the buffer. Any operation that can
// resize the storage (Push, Append, Insert, Reserve, Clear) may remap it and
// invalidates every outstanding view. Fetch, use, and drop views between
// mutations; Values yields copies when records must be retained.
//
// # Thread Safety
//
// A Vec is not safe for concurrent use. One writer per backing buffer;
// readers must not overlap mutations.
package vec
