package vec

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joshuapare/veckit/internal/buf"
	"github.com/joshuapare/veckit/internal/format"
	"github.com/joshuapare/veckit/storage"
)

// Vec is a growable array of fixed-size records stored in a storage.Buffer.
// See the package documentation for the layout and the borrow discipline.
//
// Vec never caches the buffer's bytes: every operation re-fetches the extent
// so a resize by a previous operation can never leave a stale view behind.
type Vec[T any] struct {
	buf      storage.Buffer
	recSize  int
	recAlign int
	clearCap int

	// length and capacity mirror the header. The header is authoritative at
	// attach; between operations these fields are, and every mutation writes
	// them through.
	length   int
	capacity int
}

// Attach interprets buf as a vector of T, validating the header, or
// initializes a fresh one when the buffer is shorter than a header. The
// vector owns the buffer from here on: resizing it behind the vector's back
// invalidates the attachment.
func Attach[T any](b storage.Buffer, opts ...Option) (*Vec[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if err := checkRecordType(rt); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.clearCapacity < 0 {
		return nil, fmt.Errorf("vec: negative clear capacity %d", o.clearCapacity)
	}

	v := &Vec[T]{
		buf:      b,
		recSize:  int(rt.Size()),
		recAlign: rt.Align(),
		clearCap: o.clearCapacity,
	}

	raw := b.Bytes()
	if len(raw) < format.HeaderSize {
		if err := v.init(); err != nil {
			return nil, err
		}
		return v, nil
	}
	if err := v.load(raw); err != nil {
		return nil, err
	}
	return v, nil
}

// init grows the buffer to a bare header and writes an empty vector.
func (v *Vec[T]) init() error {
	if err := v.buf.Grow(format.HeaderSize); err != nil {
		return fmt.Errorf("vec: initialize header: %w", err)
	}
	b := v.buf.Bytes()
	if err := v.checkAlign(b); err != nil {
		return err
	}
	copy(b[format.MagicOffset:], format.Magic)
	format.PutU64(b, format.LengthOffset, 0)
	format.PutU64(b, format.CapacityOffset, 0)
	v.length, v.capacity = 0, 0
	return nil
}

// load validates an existing image and adopts its header fields.
func (v *Vec[T]) load(b []byte) error {
	if err := Validate(b, v.recSize); err != nil {
		return err
	}
	if err := v.checkAlign(b); err != nil {
		return err
	}
	v.length = int(format.ReadU64(b, format.LengthOffset))
	v.capacity = int(format.ReadU64(b, format.CapacityOffset))
	return nil
}

// checkAlign verifies the first record slot is aligned for T. Mapped pages
// are page-aligned and heap slices are word-aligned, so this fires only for
// buffers carved out at odd offsets.
func (v *Vec[T]) checkAlign(b []byte) error {
	if len(b) == 0 || v.recAlign <= 1 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&b[0])) + uintptr(format.HeaderSize)
	if addr%uintptr(v.recAlign) != 0 {
		return fmt.Errorf("vec: record region at %#x is not aligned to %d bytes: %w",
			addr, v.recAlign, ErrAlignment)
	}
	return nil
}

// records reinterprets the record region as a slot array. This is the only
// place raw bytes become typed records; the preconditions (size equality,
// alignment, pointer-free T) are established at attach and after every
// resize. The caller must not hold the result across a resize.
func (v *Vec[T]) records(b []byte) []T {
	if v.capacity == 0 {
		return nil
	}
	if want := format.HeaderSize + v.capacity*v.recSize; len(b) < want {
		panic(fmt.Sprintf("vec: buffer is %d bytes but the header accounts for %d; resized outside the vector", len(b), want))
	}
	p := unsafe.Add(unsafe.Pointer(&b[0]), format.HeaderSize)
	return unsafe.Slice((*T)(p), v.capacity)
}

// setLength writes the live record count through to the header.
func (v *Vec[T]) setLength(b []byte, n int) {
	format.PutU64(b, format.LengthOffset, uint64(n))
	v.length = n
}

// Len returns the number of live records.
func (v *Vec[T]) Len() int { return v.length }

// Cap returns the number of allocated record slots.
func (v *Vec[T]) Cap() int { return v.capacity }

// IsEmpty reports whether the vector has no live records.
func (v *Vec[T]) IsEmpty() bool { return v.length == 0 }

// Get returns a pointer to record i. The pointer follows the borrow
// discipline: it is invalidated by any operation that resizes the storage.
func (v *Vec[T]) Get(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, fmt.Errorf("vec: index %d out of range [0,%d): %w", i, v.length, ErrIndexOutOfRange)
	}
	return &v.records(v.buf.Bytes())[i], nil
}

// Set overwrites record i in place.
func (v *Vec[T]) Set(i int, rec T) error {
	if i < 0 || i >= v.length {
		return fmt.Errorf("vec: index %d out of range [0,%d): %w", i, v.length, ErrIndexOutOfRange)
	}
	v.records(v.buf.Bytes())[i] = rec
	return nil
}

// Push appends rec, doubling the capacity when the vector is full. When the
// growth fails, length, capacity, and the stored bytes are unchanged.
func (v *Vec[T]) Push(rec T) error {
	if err := v.ensure(1); err != nil {
		return err
	}
	b := v.buf.Bytes()
	v.records(b)[v.length] = rec
	v.setLength(b, v.length+1)
	return nil
}

// Append pushes recs in order with at most one growth step.
func (v *Vec[T]) Append(recs ...T) error {
	if len(recs) == 0 {
		return nil
	}
	if err := v.ensure(len(recs)); err != nil {
		return err
	}
	b := v.buf.Bytes()
	copy(v.records(b)[v.length:], recs)
	v.setLength(b, v.length+len(recs))
	return nil
}

// Pop removes and returns the last record. The second result is false when
// the vector is empty. Capacity is unchanged; only Clear shrinks storage.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	b := v.buf.Bytes()
	rec := v.records(b)[v.length-1]
	v.setLength(b, v.length-1)
	return rec, true
}

// Insert places rec at index i, shifting records[i:] one slot right.
// i may equal Len, which appends.
func (v *Vec[T]) Insert(i int, rec T) error {
	if i < 0 || i > v.length {
		return fmt.Errorf("vec: insert index %d out of range [0,%d]: %w", i, v.length, ErrIndexOutOfRange)
	}
	if err := v.ensure(1); err != nil {
		return err
	}
	b := v.buf.Bytes()
	records := v.records(b)
	copy(records[i+1:v.length+1], records[i:v.length])
	records[i] = rec
	v.setLength(b, v.length+1)
	return nil
}

// Remove deletes and returns record i, shifting the tail one slot left.
func (v *Vec[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, fmt.Errorf("vec: index %d out of range [0,%d): %w", i, v.length, ErrIndexOutOfRange)
	}
	b := v.buf.Bytes()
	records := v.records(b)
	rec := records[i]
	copy(records[i:v.length-1], records[i+1:v.length])
	v.setLength(b, v.length-1)
	return rec, nil
}

// SwapRemove deletes and returns record i by moving the last record into its
// slot. Constant time, does not preserve order.
func (v *Vec[T]) SwapRemove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, fmt.Errorf("vec: index %d out of range [0,%d): %w", i, v.length, ErrIndexOutOfRange)
	}
	b := v.buf.Bytes()
	records := v.records(b)
	rec := records[i]
	records[i] = records[v.length-1]
	v.setLength(b, v.length-1)
	return rec, nil
}

// Truncate drops records from the tail until at most n remain. It never
// shrinks the backing storage; Clear does that.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= v.length {
		return
	}
	v.setLength(v.buf.Bytes(), n)
}

// Reserve ensures capacity for at least additional records beyond the
// current length, growing at most once. Later pushes up to that capacity
// cannot fail.
func (v *Vec[T]) Reserve(additional int) error {
	if additional < 0 {
		return fmt.Errorf("vec: negative reserve %d", additional)
	}
	return v.ensure(additional)
}

// Clear removes every record and resizes the backing storage to the clear
// capacity configured at attach (a bare header by default). The storage is
// resized before the header is rewritten, so a failed resize leaves the
// vector observably unchanged.
func (v *Vec[T]) Clear() error {
	size, ok := buf.RegionSize(format.HeaderSize, v.clearCap, v.recSize)
	if !ok {
		return fmt.Errorf("vec: %d slots of %d bytes: %w", v.clearCap, v.recSize, ErrCapacityOverflow)
	}
	switch cur := len(v.buf.Bytes()); {
	case size < cur:
		if err := v.buf.Truncate(size); err != nil {
			return fmt.Errorf("vec: shrink to %d slots: %w", v.clearCap, err)
		}
	case size > cur:
		if err := v.buf.Grow(size); err != nil {
			return fmt.Errorf("vec: grow to %d slots: %w", v.clearCap, err)
		}
	}
	b := v.buf.Bytes()
	if err := v.checkAlign(b); err != nil {
		return err
	}
	format.PutU64(b, format.LengthOffset, 0)
	format.PutU64(b, format.CapacityOffset, uint64(v.clearCap))
	v.length, v.capacity = 0, v.clearCap
	return nil
}

// Slice returns the live records as one typed view over the storage. The
// full slice expression pins capacity so append cannot alias spare slots.
// Like Get, the view dies at the next resize.
func (v *Vec[T]) Slice() []T {
	return v.records(v.buf.Bytes())[:v.length:v.length]
}

// ensure makes room for additional more records. Growth doubles the
// capacity (one slot from empty) and jumps straight to the requirement when
// doubling is not enough, so bulk appends grow at most once.
func (v *Vec[T]) ensure(additional int) error {
	need, ok := buf.Add(v.length, additional)
	if !ok {
		return fmt.Errorf("vec: length %d + %d records: %w", v.length, additional, ErrCapacityOverflow)
	}
	if need <= v.capacity {
		return nil
	}
	newCap := v.capacity * 2
	if newCap < 1 {
		newCap = 1
	}
	if newCap < need {
		newCap = need
	}
	return v.setCapacity(newCap)
}

// setCapacity grows the region to hold exactly n slots and persists the new
// capacity. The header write happens after the grow succeeds, so a failed
// grow leaves header and cached fields untouched.
func (v *Vec[T]) setCapacity(n int) error {
	size, ok := buf.RegionSize(format.HeaderSize, n, v.recSize)
	if !ok {
		return fmt.Errorf("vec: %d slots of %d bytes: %w", n, v.recSize, ErrCapacityOverflow)
	}
	if err := v.buf.Grow(size); err != nil {
		return fmt.Errorf("vec: grow to %d slots: %w", n, err)
	}
	b := v.buf.Bytes()
	if err := v.checkAlign(b); err != nil {
		return err
	}
	format.PutU64(b, format.CapacityOffset, uint64(n))
	v.capacity = n
	return nil
}
