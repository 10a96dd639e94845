package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.1, 3.0})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1 + 1e-13, 2}, 1e-12)
	RequireFinite(t, []float64{0, -1, 1e300})
}

func TestArgMax(t *testing.T) {
	x := []float64{9, 1, 5, 5, 2}
	if got := ArgMax(x, 0, len(x)); got != 0 {
		t.Fatalf("ArgMax = %d, want 0", got)
	}
	if got := ArgMax(x, 1, len(x)); got != 2 {
		t.Fatalf("ArgMax from 1 = %d, want 2 (first maximum)", got)
	}
}
