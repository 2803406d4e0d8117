package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceRelNear is like RequireSliceNearlyEqual with a tolerance
// relative to want. Spectral densities span tens of decades, so absolute
// tolerances are rarely useful.
func RequireSliceRelNear(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := RelDiff(got[i], want[i]); d > rel {
			t.Fatalf("index %d: got %v, want %v (rel diff %v > %v)", i, got[i], want[i], d, rel)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequirePositive fails t if any element is not strictly positive and finite.
func RequirePositive(t *testing.T, data []float64) {
	t.Helper()
	RequireFinite(t, data)
	for i, v := range data {
		if !(v > 0) {
			t.Fatalf("index %d: non-positive value %v", i, v)
		}
	}
}

// RequireAscending fails t if data is not non-decreasing.
func RequireAscending(t *testing.T, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			t.Fatalf("index %d: %v < %v, not ascending", i, data[i], data[i-1])
		}
	}
}

// RelDiff returns |a-b| / max(|a|, |b|), or 0 when both are zero.
func RelDiff(a, b float64) float64 {
	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return 0
	}
	return math.Abs(a-b) / largest
}

// MaxAbsDiff returns max |a[i]-b[i]|. Slices of different length are an
// error rather than a silent partial comparison.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	worst := 0.0
	for i, v := range a {
		worst = math.Max(worst, math.Abs(v-b[i]))
	}
	return worst, nil
}
