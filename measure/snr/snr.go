package snr

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-gw/gw/curve"
	"github.com/cwbudde/algo-vecmath"
)

const defaultThreshold = 1.0

// ErrNoise reports a noise source that returned unusable values.
var ErrNoise = errors.New("snr: noise PSD must be positive and finite")

// NoiseSource evaluates a noise PSD at arbitrary frequencies.
// *noise.Model satisfies it.
type NoiseSource interface {
	Evaluate(freqs []float64) []float64
}

// Tabulated adapts a sampled noise curve to [NoiseSource] using log-log
// interpolation. Frequencies outside the table clamp to the end values.
type Tabulated curve.Curve

// Evaluate interpolates the table at freqs. It returns nil if the table is
// unusable, which [Calculator.Compare] reports as ErrNoise.
func (t Tabulated) Evaluate(freqs []float64) []float64 {
	out, err := curve.InterpolateLogLog(t.Frequency, t.Power, freqs)
	if err != nil {
		return nil
	}
	return out
}

// Config holds comparison parameters.
type Config struct {
	// Threshold is the signal-to-noise PSD ratio above which a point counts
	// as standing out of the noise.
	Threshold float64
}

// Result holds the comparison of one signal curve with one noise source.
type Result struct {
	Frequency []float64 // signal frequencies
	NoisePSD  []float64 // noise PSD at Frequency
	Ratio     []float64 // signal PSD / noise PSD

	MaxRatio     float64
	MaxRatioFreq float64

	// AboveCount points exceed Threshold; AboveLo and AboveHi bound them.
	AboveCount int
	AboveLo    float64
	AboveHi    float64

	// Integrated is sqrt(sum(Ratio^2)), a single figure of merit.
	Integrated float64
}

// Calculator compares signal curves with noise.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a new comparison calculator.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: normalizeConfig(cfg)}
}

// Analyze is a one-shot comparison.
func Analyze(signal curve.Curve, noise NoiseSource, cfg Config) (Result, error) {
	return NewCalculator(cfg).Compare(signal, noise)
}

// Compare evaluates noise at the signal frequencies and computes the ratio.
// signal must be a PSD in the units of the noise source, such as a binned
// synthesizer curve. Line spectra hold power per line and are not comparable.
func (c *Calculator) Compare(signal curve.Curve, noise NoiseSource) (Result, error) {
	if err := signal.Validate(); err != nil {
		return Result{}, err
	}
	if noise == nil {
		return Result{}, fmt.Errorf("%w: nil source", ErrNoise)
	}
	n := signal.Len()
	if n == 0 {
		return Result{}, nil
	}

	sn := noise.Evaluate(signal.Frequency)
	if len(sn) != n {
		return Result{}, fmt.Errorf("%w: got %d values for %d frequencies", ErrNoise, len(sn), n)
	}
	inv := make([]float64, n)
	for i, v := range sn {
		if !(v > 0) || math.IsInf(v, 1) {
			return Result{}, fmt.Errorf("%w: %v at %v Hz", ErrNoise, v, signal.Frequency[i])
		}
		inv[i] = 1 / v
	}

	ratio := make([]float64, n)
	vecmath.MulBlock(ratio, signal.Power, inv)

	r := Result{
		Frequency: append([]float64(nil), signal.Frequency...),
		NoisePSD:  sn,
		Ratio:     ratio,
	}
	sumSq := 0.0
	for i, q := range ratio {
		sumSq += q * q
		if q > r.MaxRatio {
			r.MaxRatio = q
			r.MaxRatioFreq = r.Frequency[i]
		}
		if q > c.cfg.Threshold {
			if r.AboveCount == 0 {
				r.AboveLo = r.Frequency[i]
			}
			r.AboveHi = r.Frequency[i]
			r.AboveCount++
		}
	}
	r.Integrated = math.Sqrt(sumSq)
	return r, nil
}

func normalizeConfig(cfg Config) Config {
	if !(cfg.Threshold > 0) || math.IsInf(cfg.Threshold, 1) {
		cfg.Threshold = defaultThreshold
	}
	return cfg
}
