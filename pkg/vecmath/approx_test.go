package vecmath

import "testing"

func TestCloseEqualExact(t *testing.T) {
	values := []float32{0, 1, -1, 0.001, 1e6, -3.25e-7}
	for _, v := range values {
		if !CloseEqual(v, v) {
			t.Errorf("CloseEqual(%v, %v) = false, want true", v, v)
		}
	}
}

func TestCloseEqualDefaultTolerance(t *testing.T) {
	tests := []struct {
		a, b float32
		want bool
	}{
		{1.0, 1.0009, true},
		{1.0, 1.002, false},
		{1000, 1000.9, true},
		{1000, 1002, false},
		{-1.0, -1.0009, true},
		{0.5, -0.5, false},
	}
	for _, tt := range tests {
		if got := CloseEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("CloseEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCloseEqualScaleInvariant(t *testing.T) {
	// The same relative error should pass or fail regardless of magnitude.
	if !CloseEqualTol(1e6, 1e6+500, 0.001) {
		t.Error("relative error 5e-4 at magnitude 1e6 should pass")
	}
	if CloseEqualTol(1e6, 1e6+2000, 0.001) {
		t.Error("relative error 2e-3 at magnitude 1e6 should fail")
	}
}

func TestVec3CloseEqualPerAxis(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{1.0009, 2.0018, 3.0027}
	if !a.CloseEqual(b) {
		t.Errorf("%v and %v should be close per axis", a, b)
	}

	// A single out-of-tolerance axis fails the whole comparison even
	// when the other two match exactly.
	c := Vec3{1, 2.005, 3}
	if a.CloseEqual(c) {
		t.Errorf("%v and %v should not be close", a, c)
	}
}

func TestHashMatchesCloseEqual(t *testing.T) {
	// Both vectors sit well inside the same tolerance buckets.
	a := Vec3{1.0001, 2.0002, -3.0001}
	b := Vec3{1.0002, 2.0001, -3.0002}
	if !a.CloseEqual(b) {
		t.Fatalf("%v and %v should be close", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("close vectors hash to %#x and %#x, want equal", a.Hash(), b.Hash())
	}
}

func TestHashSeparatesDistantVectors(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{1, 2, 4}
	if a.Hash() == b.Hash() {
		t.Errorf("distant vectors share hash %#x", a.Hash())
	}
}

func TestHashUsableAsMapKey(t *testing.T) {
	positions := []Vec3{
		{0.5, 0.5, 0.5},
		{0.5001, 0.4999, 0.5001}, // same buckets as the first
		{10, 10, 10},
	}

	buckets := make(map[uint64][]int)
	for i, p := range positions {
		h := p.Hash()
		buckets[h] = append(buckets[h], i)
	}

	if len(buckets) != 2 {
		t.Fatalf("expected 2 distinct buckets, got %d", len(buckets))
	}
	if got := len(buckets[positions[0].Hash()]); got != 2 {
		t.Errorf("expected 2 entries in shared bucket, got %d", got)
	}
}
