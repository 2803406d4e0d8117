package testutil

import (
	"math"

	"golang.org/x/exp/rand"
)

// RandomPopulation returns n reproducible binaries drawn from ranges typical
// of galactic double white dwarfs: chirp mass 0.2-1.0 Msun, distance 0.5-20
// kpc, orbital period 10 min - 1 day (log-uniform) and eccentricity in
// [0, maxEcc).
func RandomPopulation(seed uint64, n int, maxEcc float64) (mc, dist, forb, ecc []float64) {
	rng := rand.New(rand.NewSource(seed))
	mc = make([]float64, n)
	dist = make([]float64, n)
	forb = make([]float64, n)
	ecc = make([]float64, n)
	lo, hi := math.Log(600.0), math.Log(86400.0)
	for i := range n {
		mc[i] = 0.2 + 0.8*rng.Float64()
		dist[i] = 0.5 + 19.5*rng.Float64()
		forb[i] = 1 / math.Exp(lo+(hi-lo)*rng.Float64())
		ecc[i] = maxEcc * rng.Float64()
	}
	return mc, dist, forb, ecc
}
