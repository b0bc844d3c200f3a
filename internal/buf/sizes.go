// Package buf contains overflow-safe arithmetic for buffer and region sizing.
// All helpers operate on non-negative sizes; negative inputs report failure
// rather than wrapping.
package buf

import "math"

// Add returns a+b, with ok = false when either input is negative or the sum
// would overflow int.
func Add(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// Mul returns a*b, with ok = false when either input is negative or the
// product would overflow int.
func Mul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if b != 0 && a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// RegionSize returns header + count*elemSize, the byte size of a region
// holding count fixed-size elements after a header, with ok = false when the
// result would overflow int.
//
// This is the one bounds calculation every resize goes through:
//
//	size, ok := buf.RegionSize(format.HeaderSize, newCap, recSize)
//	if !ok {
//	    return ErrCapacityOverflow
//	}
func RegionSize(header, count, elemSize int) (int, bool) {
	n, ok := Mul(count, elemSize)
	if !ok {
		return 0, false
	}
	return Add(header, n)
}
