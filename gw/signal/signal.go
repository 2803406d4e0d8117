package signal

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-gw/gw/binary"
	"github.com/cwbudde/algo-gw/gw/curve"
	"github.com/cwbudde/algo-gw/gw/harmonic"
	"github.com/cwbudde/algo-vecmath"
)

// line is the emission of one binary in one harmonic.
type line struct {
	f, p float64
}

// Synthesizer turns binary populations into spectra.
type Synthesizer struct {
	cfg Config
}

// NewSynthesizer validates cfg and returns a Synthesizer.
func NewSynthesizer(cfg Config) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{cfg: cfg}, nil
}

// Config returns the synthesis parameters.
func (s *Synthesizer) Config() Config { return s.cfg }

// Synthesize is a one-shot helper: it validates cfg and the four columns and
// synthesizes their spectrum. Columns must have equal length.
func Synthesize(chirpMass, distance, orbitalFreq, ecc []float64, cfg Config) (curve.Curve, error) {
	s, err := NewSynthesizer(cfg)
	if err != nil {
		return curve.Curve{}, err
	}
	return s.Synthesize(binary.Population{
		ChirpMass:   chirpMass,
		Distance:    distance,
		OrbitalFreq: orbitalFreq,
		Ecc:         ecc,
	})
}

// Synthesize returns the line spectrum or the binned PSD of pop, ascending by
// frequency. Binned curves carry an error column; line spectra do not.
// Invalid input, or an orbit whose harmonics exceed the configured cap,
// returns an error and an empty curve. An empty population returns an empty
// curve.
func (s *Synthesizer) Synthesize(pop binary.Population) (curve.Curve, error) {
	if err := pop.Validate(); err != nil {
		return curve.Curve{}, err
	}
	chunks, err := s.lines(pop)
	if err != nil {
		return curve.Curve{}, err
	}
	if s.cfg.LineMode {
		return lineCurve(chunks), nil
	}
	return binnedCurve(accumulate(chunks, s.cfg.SamplesPerDecade)), nil
}

// Bins returns every bin of the logarithmic grid for pop, empty ones
// included, ascending by frequency. LineMode is ignored.
func (s *Synthesizer) Bins(pop binary.Population) ([]Bin, error) {
	if err := pop.Validate(); err != nil {
		return nil, err
	}
	chunks, err := s.lines(pop)
	if err != nil {
		return nil, err
	}
	return accumulate(chunks, s.cfg.SamplesPerDecade), nil
}

// Lines returns the number of retained harmonics per binary, in input order.
func (s *Synthesizer) Lines(pop binary.Population) ([]int, error) {
	if err := pop.Validate(); err != nil {
		return nil, err
	}
	out := make([]int, pop.Len())
	var hs []harmonic.Harmonic
	for i := range out {
		var err error
		hs, err = harmonic.AppendSignificant(hs[:0], pop.Ecc[i], s.cfg.Harmonics)
		if err != nil {
			return nil, fmt.Errorf("binary %d: %w", i, err)
		}
		out[i] = len(hs)
	}
	return out, nil
}

// lines computes the harmonic lines of pop, one slice per chunk. The error of
// the lowest failing binary is returned.
func (s *Synthesizer) lines(pop binary.Population) ([][]line, error) {
	n := pop.Len()
	out := make([][]line, chunkCount(n))
	errs := make([]error, len(out))
	forEachChunk(len(out), func(c int) {
		lo := c * chunkSize
		hi := min(lo+chunkSize, n)

		var hs []harmonic.Harmonic
		ls := make([]line, 0, 2*(hi-lo))
		for i := lo; i < hi; i++ {
			b := pop.At(i)
			var err error
			hs, err = harmonic.AppendSignificant(hs[:0], b.Ecc, s.cfg.Harmonics)
			if err != nil {
				errs[c] = fmt.Errorf("binary %d: %w", i, err)
				return
			}
			amp := s.cfg.Calibration * math.Pow(b.ChirpMass, 10.0/3.0) / (b.Distance * b.Distance)
			for _, h := range hs {
				f := b.GWFrequency(h.N)
				ls = append(ls, line{f: f, p: amp * h.Weight * math.Pow(f, -7.0/3.0)})
			}
		}
		out[c] = ls
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func lineCurve(chunks [][]line) curve.Curve {
	all := slices.Concat(chunks...)
	if len(all) == 0 {
		return curve.Curve{}
	}
	slices.SortStableFunc(all, func(a, b line) int { return cmp.Compare(a.f, b.f) })

	c := curve.Curve{
		Frequency: make([]float64, len(all)),
		Power:     make([]float64, len(all)),
	}
	for i, l := range all {
		c.Frequency[i] = l.f
		c.Power[i] = l.p
	}
	return c
}

// accumulate bins all lines on a grid spanning their frequency range. Each
// chunk fills a private arena; arenas are summed in chunk order.
func accumulate(chunks [][]line, spd int) []Bin {
	fmin, fmax := math.Inf(1), math.Inf(-1)
	for _, ls := range chunks {
		for _, l := range ls {
			fmin = min(fmin, l.f)
			fmax = max(fmax, l.f)
		}
	}
	if fmin > fmax {
		return nil
	}

	g := newGrid(fmin, fmax, spd)
	partial := make([]arena, len(chunks))
	forEachChunk(len(chunks), func(c int) {
		a := newArena(g.Len())
		for _, l := range chunks[c] {
			a.add(g.index(l.f), l.p)
		}
		partial[c] = a
	})

	total := newArena(g.Len())
	for _, a := range partial {
		vecmath.AddBlockInPlace(total.power, a.power)
		for k, n := range a.count {
			total.count[k] += n
		}
	}

	bins := make([]Bin, g.Len())
	for k := range bins {
		bins[k] = Bin{
			Lo:    g.edges[k],
			Hi:    g.edges[k+1],
			Power: total.power[k],
			Count: total.count[k],
		}
	}
	return bins
}

// binnedCurve converts populated bins to a PSD curve with errors.
func binnedCurve(bins []Bin) curve.Curve {
	n := 0
	for _, b := range bins {
		if b.Count > 0 {
			n++
		}
	}
	if n == 0 {
		return curve.Curve{}
	}

	freq := make([]float64, 0, n)
	power := make([]float64, 0, n)
	invWidth := make([]float64, 0, n)
	invSqrtCount := make([]float64, 0, n)
	for _, b := range bins {
		if b.Count == 0 {
			continue
		}
		freq = append(freq, b.Center())
		power = append(power, b.Power)
		invWidth = append(invWidth, 1/b.Width())
		invSqrtCount = append(invSqrtCount, 1/math.Sqrt(float64(b.Count)))
	}

	vecmath.MulBlockInPlace(power, invWidth)
	errs := make([]float64, n)
	vecmath.MulBlock(errs, power, invSqrtCount)

	return curve.Curve{Frequency: freq, Power: power, Error: errs}
}
