package frequency

import (
	"math"

	"github.com/cwbudde/algo-gw/gw/curve"
)

// Stats holds summary statistics of a power spectral density curve.
type Stats struct {
	PointCount int
	MinFreq    float64
	MaxFreq    float64
	Peak       float64 // largest PSD value
	Peak_dB    float64
	PeakFreq   float64
	Integrated float64 // trapezoidal integral of PSD over frequency
	// Spectral shape descriptors on a logarithmic frequency axis
	LogCentroid float64 // power-weighted geometric mean frequency (Hz)
	Flatness    float64 // geometric over arithmetic mean of PSD, 0..1
	Rolloff     float64 // frequency below which 85% of power lies (Hz)
}

// toDB converts a linear power to decibels (10*log10 convention).
// Returns -Inf for zero values.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(v)
}

// Calculate computes all statistics for c. The curve is assumed ascending by
// frequency with non-negative power, as produced by the noise model and the
// signal synthesizer.
func Calculate(c curve.Curve) Stats {
	n := c.Len()
	if n == 0 {
		return Stats{Peak_dB: math.Inf(-1)}
	}

	s := Stats{
		PointCount: n,
		MinFreq:    c.Frequency[0],
		MaxFreq:    c.Frequency[n-1],
		Peak:       c.Power[0],
		PeakFreq:   c.Frequency[0],
	}
	for i, v := range c.Power {
		if v > s.Peak {
			s.Peak = v
			s.PeakFreq = c.Frequency[i]
		}
	}
	s.Peak_dB = toDB(s.Peak)
	s.Integrated = Integrate(c.Frequency, c.Power)
	s.LogCentroid = logCentroid(c.Frequency, c.Power, s.Integrated)
	s.Flatness = Flatness(c.Power)
	s.Rolloff = rolloff(c.Frequency, c.Power, 0.85, s.Integrated)
	return s
}

// Integrate returns the trapezoidal integral of psd over freq. A single
// point integrates to zero.
func Integrate(freq, psd []float64) float64 {
	sum := 0.0
	for i := 1; i < len(freq) && i < len(psd); i++ {
		sum += 0.5 * (psd[i] + psd[i-1]) * (freq[i] - freq[i-1])
	}
	return sum
}

// LogCentroid returns exp of the power-weighted mean of ln f.
func LogCentroid(freq, psd []float64) float64 {
	return logCentroid(freq, psd, Integrate(freq, psd))
}

func logCentroid(freq, psd []float64, total float64) float64 {
	if len(freq) < 2 || total == 0 {
		if len(freq) == 1 {
			return freq[0]
		}
		return 0
	}
	weighted := 0.0
	for i := 1; i < len(freq); i++ {
		df := freq[i] - freq[i-1]
		a := psd[i-1] * math.Log(freq[i-1])
		b := psd[i] * math.Log(freq[i])
		weighted += 0.5 * (a + b) * df
	}
	return math.Exp(weighted / total)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// Flatness = exp(mean(log(S_i))) / mean(S_i)
//
// If any value is zero the geometric mean is zero and 0 is returned.
func Flatness(psd []float64) float64 {
	n := len(psd)
	if n == 0 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	for _, v := range psd {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	meanLin := sumLin / float64(n)
	return math.Exp(sumLog/float64(n)) / meanLin
}

// Rolloff returns the frequency below which the given fraction (0..1) of the
// integrated power lies, interpolating linearly inside the crossing segment.
func Rolloff(freq, psd []float64, percent float64) float64 {
	return rolloff(freq, psd, percent, Integrate(freq, psd))
}

func rolloff(freq, psd []float64, percent, total float64) float64 {
	n := len(freq)
	if n == 0 {
		return 0
	}
	if n < 2 || total == 0 {
		return freq[0]
	}
	threshold := percent * total
	cum := 0.0
	for i := 1; i < n; i++ {
		seg := 0.5 * (psd[i] + psd[i-1]) * (freq[i] - freq[i-1])
		if cum+seg >= threshold && seg > 0 {
			t := (threshold - cum) / seg
			return freq[i-1] + t*(freq[i]-freq[i-1])
		}
		cum += seg
	}
	return freq[n-1]
}
