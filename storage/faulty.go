package storage

import "errors"

// ErrInjected is the default error returned by an armed Faulty buffer.
var ErrInjected = errors.New("storage: injected fault")

// Faulty wraps another Buffer and injects failures into its resize
// operations. It exists so tests can prove that a failed resize leaves
// higher layers observably unchanged.
//
// The zero value (no flags set) is transparent. Arming FailGrow or
// FailTruncate makes that operation fail after Allow successful armed calls.
type Faulty struct {
	Inner Buffer

	// FailGrow and FailTruncate arm injection for the respective operation.
	FailGrow     bool
	FailTruncate bool

	// Allow is the number of armed calls that succeed before injection
	// starts. Zero fails the first armed call.
	Allow int

	// Err is the injected error. ErrInjected when nil.
	Err error

	calls int
}

var _ Buffer = (*Faulty)(nil)

// Bytes returns the wrapped buffer's extent.
func (f *Faulty) Bytes() []byte {
	return f.Inner.Bytes()
}

// Grow delegates to the wrapped buffer unless an armed fault fires.
func (f *Faulty) Grow(size int) error {
	if f.FailGrow && f.fire() {
		return f.err()
	}
	return f.Inner.Grow(size)
}

// Truncate delegates to the wrapped buffer unless an armed fault fires.
func (f *Faulty) Truncate(size int) error {
	if f.FailTruncate && f.fire() {
		return f.err()
	}
	return f.Inner.Truncate(size)
}

func (f *Faulty) fire() bool {
	if f.calls < f.Allow {
		f.calls++
		return false
	}
	return true
}

func (f *Faulty) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrInjected
}
