package realize

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-gw/gw/curve"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/exp/rand"
)

// ErrConfig reports invalid realization parameters.
var ErrConfig = errors.New("realize: invalid config")

// Config holds realization parameters.
type Config struct {
	SampleRate float64 // Hz
	Length     int     // samples
	Seed       uint64
}

// Validate reports whether cfg describes a usable time series.
func (cfg Config) Validate() error {
	if !(cfg.SampleRate > 0) || math.IsInf(cfg.SampleRate, 1) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrConfig, cfg.SampleRate)
	}
	if cfg.Length < 2 {
		return fmt.Errorf("%w: length must be >= 2: %d", ErrConfig, cfg.Length)
	}
	return nil
}

// Realize returns a time series sum_k sqrt(2 P_k) cos(2 pi f_k t + phi_k)
// with independent uniform phases, so each line contributes mean-square
// strain P_k. Lines at or above Nyquist are skipped; the number of lines
// used is returned.
func Realize(lines curve.Curve, cfg Config) ([]float64, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}
	if err := lines.Validate(); err != nil {
		return nil, 0, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	nyquist := cfg.SampleRate / 2
	dt := 1 / cfg.SampleRate
	out := make([]float64, cfg.Length)
	used := 0
	for k, f := range lines.Frequency {
		if f >= nyquist {
			break
		}
		amp := math.Sqrt(2 * lines.Power[k])
		phase := 2 * math.Pi * rng.Float64()
		w := 2 * math.Pi * f * dt
		for i := range out {
			out[i] += amp * math.Cos(w*float64(i)+phase)
		}
		used++
	}
	return out, used, nil
}

// Periodogram returns the one-sided PSD of x sampled at sampleRate using a
// periodic Hann window. Bins 1..N/2-1 are doubled; DC and Nyquist are not,
// so the PSD integrated over the returned bins equals the windowed mean
// square of x. The DC bin is omitted from the curve, which starts at fs/N.
func Periodogram(x []float64, sampleRate float64) (curve.Curve, error) {
	n := len(x)
	if n < 4 || n%2 != 0 {
		return curve.Curve{}, fmt.Errorf("periodogram length must be even and >= 4: %d", n)
	}
	if !(sampleRate > 0) {
		return curve.Curve{}, fmt.Errorf("periodogram sample rate must be > 0: %v", sampleRate)
	}

	win := hann(n)
	buf := append([]float64(nil), x...)
	vecmath.MulBlockInPlace(buf, win)

	in := make([]complex128, n)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return curve.Curve{}, fmt.Errorf("periodogram fft plan: %w", err)
	}
	spec := make([]complex128, n)
	if err := plan.Forward(spec, in); err != nil {
		return curve.Curve{}, fmt.Errorf("periodogram fft: %w", err)
	}

	half := n / 2
	re := make([]float64, half)
	im := make([]float64, half)
	for k := 1; k <= half; k++ {
		re[k-1] = real(spec[k])
		im[k-1] = imag(spec[k])
	}
	pow := make([]float64, half)
	vecmath.Power(pow, re, im)

	sumW2 := 0.0
	for _, w := range win {
		sumW2 += w * w
	}
	scale := 1 / (sampleRate * sumW2)
	df := sampleRate / float64(n)

	c := curve.Curve{Frequency: make([]float64, half), Power: pow}
	for k := range half {
		c.Frequency[k] = float64(k+1) * df
		if k+1 < half {
			pow[k] *= 2 * scale
		} else {
			pow[k] *= scale
		}
	}
	return c, nil
}

func hann(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}
