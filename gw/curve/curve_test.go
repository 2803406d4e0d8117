package curve

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-gw/internal/testutil"
)

func TestLogSpace(t *testing.T) {
	f, err := LogSpace(1e-5, 1, 6)
	if err != nil {
		t.Fatalf("LogSpace error: %v", err)
	}
	testutil.RequireSliceRelNear(t, f, []float64{1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1}, 1e-12)
	testutil.RequireAscending(t, f)

	// Uneven endpoints still give equal steps in log10(f).
	g, err := LogSpace(2e-5, 3, 50)
	if err != nil {
		t.Fatalf("LogSpace error: %v", err)
	}
	step := math.Log10(3/2e-5) / 49
	steps := make([]float64, len(g)-1)
	want := make([]float64, len(g)-1)
	for i := range steps {
		steps[i] = math.Log10(g[i+1]) - math.Log10(g[i])
		want[i] = step
	}
	d, err := testutil.MaxAbsDiff(steps, want)
	if err != nil {
		t.Fatal(err)
	}
	if d > 1e-12 {
		t.Fatalf("log10 step deviates by %v", d)
	}

	if _, err := LogSpace(0, 1, 10); err == nil {
		t.Fatalf("expected error for lo=0")
	}
	if _, err := LogSpace(1, 1, 10); err == nil {
		t.Fatalf("expected error for lo=hi")
	}
	if _, err := LogSpace(1, 10, 1); err == nil {
		t.Fatalf("expected error for n=1")
	}
}

func TestInterpolateLogLogPowerLaw(t *testing.T) {
	f := []float64{1e-4, 1e-3, 1e-2}
	p := make([]float64, len(f))
	for i := range f {
		p[i] = math.Pow(f[i], -7.0/3.0)
	}

	q := []float64{3e-4, 5e-3}
	got, err := InterpolateLogLog(f, p, q)
	if err != nil {
		t.Fatalf("InterpolateLogLog error: %v", err)
	}
	want := []float64{math.Pow(3e-4, -7.0/3.0), math.Pow(5e-3, -7.0/3.0)}
	testutil.RequireSliceRelNear(t, got, want, 1e-10)
}

func TestInterpolateLogLogClampsAndHitsNodes(t *testing.T) {
	f := []float64{1, 2, 4}
	p := []float64{10, 20, 40}
	got, err := InterpolateLogLog(f, p, []float64{0.5, 2, 8})
	if err != nil {
		t.Fatalf("InterpolateLogLog error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{10, 20, 40}, 0)
}

func TestInterpolateLogLogErrors(t *testing.T) {
	cases := []struct {
		name string
		f, p []float64
	}{
		{"empty", nil, nil},
		{"mismatch", []float64{1, 2}, []float64{1}},
		{"not increasing", []float64{1, 1}, []float64{1, 1}},
		{"non-positive power", []float64{1, 2}, []float64{1, 0}},
	}
	for _, tc := range cases {
		if _, err := InterpolateLogLog(tc.f, tc.p, []float64{1}); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestCurveValidate(t *testing.T) {
	ok := Curve{Frequency: []float64{1, 2}, Power: []float64{3, 4}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok.HasError() {
		t.Fatalf("HasError true for nil error column")
	}

	bad := []Curve{
		{Frequency: []float64{1, 2}, Power: []float64{3}},
		{Frequency: []float64{1, 2}, Power: []float64{3, 4}, Error: []float64{1}},
		{Frequency: []float64{2, 1}, Power: []float64{3, 4}},
		{Frequency: []float64{0, 1}, Power: []float64{3, 4}},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}
