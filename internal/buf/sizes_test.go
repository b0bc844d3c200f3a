package buf

import (
	"math"
	"testing"
)

func TestAdd(t *testing.T) {
	if sum, ok := Add(10, 5); !ok || sum != 15 {
		t.Fatalf("Add(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := Add(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := Add(-1, 1); ok {
		t.Fatalf("expected failure for negative operand")
	}
}

func TestMul(t *testing.T) {
	if n, ok := Mul(3, 8); !ok || n != 24 {
		t.Fatalf("Mul(3,8)=%d,%v want 24,true", n, ok)
	}
	if n, ok := Mul(0, math.MaxInt); !ok || n != 0 {
		t.Fatalf("Mul(0,MaxInt)=%d,%v want 0,true", n, ok)
	}
	if _, ok := Mul(math.MaxInt/2, 3); ok {
		t.Fatalf("expected overflow for MaxInt/2 * 3")
	}
	if _, ok := Mul(2, -8); ok {
		t.Fatalf("expected failure for negative operand")
	}
}

func TestRegionSize(t *testing.T) {
	if n, ok := RegionSize(24, 8, 8); !ok || n != 88 {
		t.Fatalf("RegionSize(24,8,8)=%d,%v want 88,true", n, ok)
	}
	if n, ok := RegionSize(24, 0, 8); !ok || n != 24 {
		t.Fatalf("empty region should be header-sized, got %d,%v", n, ok)
	}
	if _, ok := RegionSize(24, math.MaxInt/4, 8); ok {
		t.Fatalf("expected overflow for huge count")
	}
	if _, ok := RegionSize(math.MaxInt, 1, 1); ok {
		t.Fatalf("expected overflow when header pushes past MaxInt")
	}
}
