package vec

import "iter"

// All returns an iterator over (index, record pointer) pairs in index order.
// The pointers follow the borrow discipline: mutating the vector inside the
// loop is undefined once the mutation resizes the storage. Each range over
// the result re-reads the vector, so the sequence is restartable.
func (v *Vec[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		records := v.records(v.buf.Bytes())
		n := v.length
		for i := 0; i < n; i++ {
			if !yield(i, &records[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the records in index order. The
// copies are safe to retain across later mutations.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		records := v.records(v.buf.Bytes())
		n := v.length
		for i := 0; i < n; i++ {
			if !yield(records[i]) {
				return
			}
		}
	}
}
