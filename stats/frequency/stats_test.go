package frequency

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-gw/gw/curve"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}

	return math.Abs(a-b) <= tol
}

// makeFlatCurve creates n linearly spaced points on [lo, hi] with constant PSD.
func makeFlatCurve(n int, lo, hi, level float64) curve.Curve {
	c := curve.Curve{Frequency: make([]float64, n), Power: make([]float64, n)}
	for i := range n {
		c.Frequency[i] = lo + (hi-lo)*float64(i)/float64(n-1)
		c.Power[i] = level
	}

	return c
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(curve.Curve{})
	if s.PointCount != 0 {
		t.Fatalf("expected PointCount=0, got %d", s.PointCount)
	}

	if !math.IsInf(s.Peak_dB, -1) {
		t.Fatalf("expected Peak_dB=-Inf, got %f", s.Peak_dB)
	}
}

func TestCalculateFlat(t *testing.T) {
	s := Calculate(makeFlatCurve(11, 1, 3, 2))
	if !almostEqual(s.Integrated, 4, tolerance) {
		t.Fatalf("Integrated=%v want 4", s.Integrated)
	}

	if !almostEqual(s.Flatness, 1, tolerance) {
		t.Fatalf("Flatness=%v want 1", s.Flatness)
	}

	if !almostEqual(s.Rolloff, 1+0.85*2, 1e-9) {
		t.Fatalf("Rolloff=%v want 2.7", s.Rolloff)
	}

	if !almostEqual(s.Peak_dB, 10*math.Log10(2), tolerance) {
		t.Fatalf("Peak_dB=%v", s.Peak_dB)
	}

	if s.MinFreq != 1 || s.MaxFreq != 3 {
		t.Fatalf("range=[%v,%v]", s.MinFreq, s.MaxFreq)
	}
}

func TestCalculatePeak(t *testing.T) {
	c := curve.Curve{
		Frequency: []float64{1e-4, 1e-3, 1e-2},
		Power:     []float64{1e-40, 5e-38, 1e-39},
	}
	s := Calculate(c)
	if s.Peak != 5e-38 || s.PeakFreq != 1e-3 {
		t.Fatalf("peak=%v at %v", s.Peak, s.PeakFreq)
	}

	if s.LogCentroid < 1e-4 || s.LogCentroid > 1e-2 {
		t.Fatalf("LogCentroid=%v outside curve", s.LogCentroid)
	}
}

func TestLogCentroidSinglePoint(t *testing.T) {
	if got := LogCentroid([]float64{2e-3}, []float64{1}); got != 2e-3 {
		t.Fatalf("LogCentroid=%v want 2e-3", got)
	}
}

func TestFlatnessZero(t *testing.T) {
	if f := Flatness([]float64{1, 0, 1}); f != 0 {
		t.Fatalf("Flatness=%v want 0", f)
	}

	if f := Flatness(nil); f != 0 {
		t.Fatalf("Flatness(nil)=%v want 0", f)
	}

	if f := Flatness([]float64{1, 100}); !(f > 0 && f < 1) {
		t.Fatalf("Flatness=%v want in (0,1)", f)
	}
}

func TestRolloffEdgeCases(t *testing.T) {
	if r := Rolloff(nil, nil, 0.85); r != 0 {
		t.Fatalf("Rolloff(nil)=%v", r)
	}

	if r := Rolloff([]float64{5}, []float64{1}, 0.85); r != 5 {
		t.Fatalf("Rolloff(single)=%v want 5", r)
	}
}
