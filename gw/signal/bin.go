package signal

import "math"

// Bin is one logarithmic frequency bin after accumulation.
type Bin struct {
	Lo, Hi float64
	// Power is the incoherent sum of the harmonic powers landing in the bin.
	Power float64
	// Count is the number of harmonics that landed in the bin.
	Count int
}

// Width returns Hi - Lo.
func (b Bin) Width() float64 { return b.Hi - b.Lo }

// Center returns the geometric mean of the bin edges.
func (b Bin) Center() float64 { return math.Sqrt(b.Lo * b.Hi) }

// PSD returns the summed power per unit frequency.
func (b Bin) PSD() float64 { return b.Power / b.Width() }

// Error returns PSD/sqrt(Count), or NaN for an empty bin.
func (b Bin) Error() float64 {
	if b.Count < 1 {
		return math.NaN()
	}
	return b.PSD() / math.Sqrt(float64(b.Count))
}

// arena accumulates power and counts per bin. Accumulation is a plain sum,
// so partial arenas can be filled independently and merged.
type arena struct {
	power []float64
	count []int
}

func newArena(n int) arena {
	return arena{power: make([]float64, n), count: make([]int, n)}
}

func (a arena) add(k int, p float64) {
	a.power[k] += p
	a.count[k]++
}
