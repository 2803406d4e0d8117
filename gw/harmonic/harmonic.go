package harmonic

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrConfig reports an invalid truncation configuration.
	ErrConfig = errors.New("harmonic: invalid config")
	// ErrTruncated reports an orbit whose significant harmonics extend past
	// Config.MaxHarmonics.
	ErrTruncated = errors.New("harmonic: max harmonics exceeded")
)

const (
	// DefaultRelativeCutoff drops harmonics weaker than this fraction of the
	// strongest harmonic of the same binary.
	DefaultRelativeCutoff = 1e-3
	// DefaultMaxHarmonics bounds per-binary work for eccentricities near one.
	DefaultMaxHarmonics = 8192
)

// Harmonic is one retained emission line of a binary.
type Harmonic struct {
	N      int
	Weight float64
}

// Config controls harmonic truncation.
//
// Enumeration stops past the peak harmonic once a weight falls below
// RelativeCutoff times the peak. Each weight costs O(n) Bessel recurrence
// steps, so an orbit needing N harmonics costs O(N^2); N grows roughly as
// (1-e^2)^-1.5. With the defaults the cap is reached just above e = 0.99,
// where a single orbit takes on the order of a second.
type Config struct {
	RelativeCutoff float64
	MaxHarmonics   int
}

// DefaultConfig returns the default truncation settings.
func DefaultConfig() Config {
	return Config{
		RelativeCutoff: DefaultRelativeCutoff,
		MaxHarmonics:   DefaultMaxHarmonics,
	}
}

// Validate reports whether cfg can be used for truncation.
func (cfg Config) Validate() error {
	if !(cfg.RelativeCutoff > 0 && cfg.RelativeCutoff < 1) {
		return fmt.Errorf("relative cutoff must be in (0, 1): %v: %w", cfg.RelativeCutoff, ErrConfig)
	}
	if cfg.MaxHarmonics < 2 {
		return fmt.Errorf("max harmonics must be >= 2: %d: %w", cfg.MaxHarmonics, ErrConfig)
	}
	return nil
}

// G returns the Peters–Mathews power function g(n,e). It returns 0 for n < 1.
func G(n int, e float64) float64 {
	if n < 1 {
		return 0
	}
	fn := float64(n)
	x := fn * e
	jm2 := math.Jn(n-2, x)
	jm1 := math.Jn(n-1, x)
	j0 := math.Jn(n, x)
	jp1 := math.Jn(n+1, x)
	jp2 := math.Jn(n+2, x)

	a := jm2 - 2*e*jm1 + 2/fn*j0 + 2*e*jp1 - jp2
	b := jm2 - 2*j0 + jp2
	n2 := fn * fn
	return n2 * n2 / 32 * (a*a + (1-e*e)*b*b + 4/(3*n2)*j0*j0)
}

// F returns the eccentricity enhancement factor, the sum of g(n,e) over n.
func F(e float64) float64 {
	e2 := e * e
	return (1 + 73.0/24.0*e2 + 37.0/96.0*e2*e2) / math.Pow(1-e2, 3.5)
}

// Weight returns the fraction of total radiated power in harmonic n.
func Weight(n int, e float64) float64 {
	return G(n, e) / F(e)
}

// PeakIndex estimates the harmonic carrying the most power (Wen 2003).
func PeakIndex(e float64) float64 {
	return 2 * math.Pow(1+e, 1.1954) / math.Pow(1-e*e, 1.5)
}

// Significant returns the harmonics of an orbit with eccentricity e whose
// weight is at least cfg.RelativeCutoff times the peak weight, ascending by n.
// It returns ErrTruncated if the stopping rule is not met within
// cfg.MaxHarmonics harmonics. cfg is assumed valid.
func Significant(e float64, cfg Config) ([]Harmonic, error) {
	return AppendSignificant(nil, e, cfg)
}

// AppendSignificant is like [Significant] but appends to dst. On error dst is
// returned unchanged.
func AppendSignificant(dst []Harmonic, e float64, cfg Config) ([]Harmonic, error) {
	if e == 0 {
		return append(dst, Harmonic{N: 2, Weight: 1}), nil
	}

	start := len(dst)
	peakN := PeakIndex(e)
	invF := 1 / F(e)
	peak := 0.0
	for n := 1; ; n++ {
		if n > cfg.MaxHarmonics {
			return dst[:start], fmt.Errorf("eccentricity %v: stopping rule not met within %d harmonics (peak near n=%.0f): %w",
				e, cfg.MaxHarmonics, peakN, ErrTruncated)
		}
		w := G(n, e) * invF
		if w > peak {
			peak = w
		}
		dst = append(dst, Harmonic{N: n, Weight: w})
		if n > 2 && float64(n) > peakN && w < cfg.RelativeCutoff*peak {
			break
		}
	}

	threshold := cfg.RelativeCutoff * peak
	kept := dst[:start]
	for _, h := range dst[start:] {
		if h.Weight > 0 && h.Weight >= threshold {
			kept = append(kept, h)
		}
	}
	return kept, nil
}
