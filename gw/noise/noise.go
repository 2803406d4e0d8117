package noise

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const speedOfLight = 299792458.0 // m/s

// Foreground fit of Cornish & Robson (2017) for each observation period.
type confusionFit struct {
	alpha, beta, kappa, gamma, fKnee float64
}

const confusionAmplitude = 9e-45

var confusionFits = [...]confusionFit{
	HalfYear:  {0.133, 243, 482, 917, 2.58e-3},
	OneYear:   {0.171, 292, 1020, 1680, 2.15e-3},
	TwoYears:  {0.165, 299, 611, 1340, 1.73e-3},
	FourYears: {0.138, -221, 521, 1680, 1.13e-3},
}

// Model evaluates the sensitivity curve for a fixed configuration.
type Model struct {
	cfg   Config
	fStar float64
	norm  float64
}

// New returns a Model configured by opts.
func New(opts ...Option) *Model {
	cfg := ApplyOptions(opts...)
	return &Model{
		cfg:   cfg,
		fStar: speedOfLight / (2 * math.Pi * cfg.ArmLength),
		norm:  10 / (3 * cfg.ArmLength * cfg.ArmLength),
	}
}

// Config returns the model parameters.
func (m *Model) Config() Config { return m.cfg }

// TransferFrequency returns f* = c / (2 pi L).
func (m *Model) TransferFrequency() float64 { return m.fStar }

// PSD returns the one-sided strain PSD in 1/Hz at frequency f in Hz,
// including the confusion foreground when configured. Frequencies that are
// not strictly positive yield NaN.
func (m *Model) PSD(f float64) float64 {
	return m.Instrument(f) + m.Confusion(f)
}

// Instrument returns the instrument-only PSD at f.
func (m *Model) Instrument(f float64) float64 {
	if !(f > 0) {
		return math.NaN()
	}
	oms := m.cfg.OMSNoise * m.cfg.OMSNoise
	r := 2e-3 / f
	pOMS := oms * (1 + r*r*r*r)

	acc := m.cfg.AccNoise * m.cfg.AccNoise
	lo := 0.4e-3 / f
	hi := f / 8e-3
	pAcc := acc * (1 + lo*lo) * (1 + hi*hi*hi*hi)

	w := 2 * math.Pi * f
	w4 := w * w * w * w
	x := f / m.fStar
	c := math.Cos(x)

	return m.norm * (pOMS + 2*(1+c*c)*pAcc/w4) * (1 + 0.6*x*x)
}

// Confusion returns the galactic foreground PSD at f, or 0 when disabled.
func (m *Model) Confusion(f float64) float64 {
	if m.cfg.Confusion == NoConfusion {
		return 0
	}
	if !(f > 0) {
		return math.NaN()
	}
	p := confusionFits[m.cfg.Confusion]
	knee := 1 + math.Tanh(p.gamma*(p.fKnee-f))
	if knee == 0 {
		// Far above the knee the exponential can overflow; the product is 0.
		return 0
	}
	return confusionAmplitude * math.Pow(f, -7.0/3.0) *
		math.Exp(-math.Pow(f, p.alpha)+p.beta*f*math.Sin(p.kappa*f)) * knee
}

// Evaluate returns PSD(f) for every frequency, in input order.
func (m *Model) Evaluate(freqs []float64) []float64 {
	if len(freqs) == 0 {
		return nil
	}
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = m.Instrument(f)
	}
	if m.cfg.Confusion == NoConfusion {
		return out
	}
	fg := make([]float64, len(freqs))
	for i, f := range freqs {
		fg[i] = m.Confusion(f)
	}
	vecmath.AddBlockInPlace(out, fg)
	return out
}

// Evaluate is a one-shot helper for New(opts...).Evaluate(freqs).
func Evaluate(freqs []float64, opts ...Option) []float64 {
	return New(opts...).Evaluate(freqs)
}

// CharacteristicStrain converts a PSD to characteristic strain sqrt(f*S(f)).
// Both slices must have equal length.
func CharacteristicStrain(freqs, psd []float64) []float64 {
	if len(freqs) == 0 {
		return nil
	}
	out := make([]float64, len(freqs))
	vecmath.MulBlock(out, freqs, psd)
	for i, v := range out {
		out[i] = math.Sqrt(v)
	}
	return out
}
