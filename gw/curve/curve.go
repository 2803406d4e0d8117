package curve

import (
	"fmt"
	"math"
	"sort"
)

// Curve is a sequence of (frequency, power[, error]) points sorted ascending
// by frequency. Error is nil when the producer defines no uncertainty, as for
// a line spectrum.
type Curve struct {
	Frequency []float64
	Power     []float64
	Error     []float64
}

// Len returns the number of points.
func (c Curve) Len() int { return len(c.Frequency) }

// HasError reports whether the curve carries an error column.
func (c Curve) HasError() bool { return c.Error != nil }

// Validate checks that the columns agree in length and that frequencies are
// strictly positive and non-decreasing.
func (c Curve) Validate() error {
	if len(c.Power) != len(c.Frequency) {
		return fmt.Errorf("curve power length mismatch: %d != %d", len(c.Power), len(c.Frequency))
	}
	if c.Error != nil && len(c.Error) != len(c.Frequency) {
		return fmt.Errorf("curve error length mismatch: %d != %d", len(c.Error), len(c.Frequency))
	}
	for i, f := range c.Frequency {
		if !(f > 0) {
			return fmt.Errorf("curve frequency must be > 0 at index %d: %v", i, f)
		}
		if i > 0 && f < c.Frequency[i-1] {
			return fmt.Errorf("curve frequency must be ascending at index %d", i)
		}
	}
	return nil
}

// LogSpace returns n frequencies spaced evenly in log10 between lo and hi,
// both included.
func LogSpace(lo, hi float64, n int) ([]float64, error) {
	if !(lo > 0) || !(hi > lo) {
		return nil, fmt.Errorf("logspace requires 0 < lo < hi: %v, %v", lo, hi)
	}
	if n < 2 {
		return nil, fmt.Errorf("logspace requires at least 2 points: %d", n)
	}
	out := make([]float64, n)
	l0 := math.Log10(lo)
	step := (math.Log10(hi) - l0) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, l0+float64(i)*step)
	}
	out[0], out[n-1] = lo, hi
	return out, nil
}

// InterpolateLogLog evaluates a tabulated curve at queryF by linear
// interpolation of log(power) against log(frequency), which is exact for
// power laws. Queries outside the table clamp to the end values.
//
// f must be strictly increasing and positive, p must be positive, and both
// must have the same length.
func InterpolateLogLog(f, p, queryF []float64) ([]float64, error) {
	if len(f) == 0 || len(p) == 0 {
		return nil, fmt.Errorf("interpolate requires non-empty f and p")
	}
	if len(f) != len(p) {
		return nil, fmt.Errorf("interpolate f/p length mismatch: %d != %d", len(f), len(p))
	}
	for i := range f {
		if !(f[i] > 0) || !(p[i] > 0) {
			return nil, fmt.Errorf("interpolate requires positive values at index %d", i)
		}
		if i > 0 && !(f[i] > f[i-1]) {
			return nil, fmt.Errorf("interpolate f must be strictly increasing at index %d", i)
		}
	}

	out := make([]float64, len(queryF))
	for i, q := range queryF {
		if q <= f[0] {
			out[i] = p[0]
			continue
		}
		if q >= f[len(f)-1] {
			out[i] = p[len(p)-1]
			continue
		}

		j := sort.SearchFloat64s(f, q)
		if f[j] == q {
			out[i] = p[j]
			continue
		}
		t := math.Log(q/f[j-1]) / math.Log(f[j]/f[j-1])
		out[i] = p[j-1] * math.Pow(p[j]/p[j-1], t)
	}
	return out, nil
}
