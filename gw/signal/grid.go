package signal

import (
	"math"
	"sort"
)

// edgeSlack absorbs log10 round-off so that a top frequency lying on a
// decade boundary still gets a bin of its own.
const edgeSlack = 1e-9

// grid is a set of strictly increasing logarithmic bin edges. Bin k covers
// [edges[k], edges[k+1]).
type grid struct {
	edges []float64
}

// newGrid spans [fmin, fmax] with spd bins per decade starting at fmin.
// fmax always falls inside the grid; when round-off puts it just below the
// top edge the last bin stays empty.
func newGrid(fmin, fmax float64, spd int) grid {
	decades := math.Log10(fmax / fmin)
	nb := int(math.Floor(decades*float64(spd)+edgeSlack)) + 1
	edges := make([]float64, nb+1)
	edges[0] = fmin
	for i := 1; i <= nb; i++ {
		edges[i] = fmin * math.Pow(10, float64(i)/float64(spd))
	}
	return grid{edges: edges}
}

// Len returns the number of bins.
func (g grid) Len() int { return len(g.edges) - 1 }

// index returns the bin holding f. A frequency equal to an edge belongs to
// the bin above it. Out-of-range values clamp to the end bins.
func (g grid) index(f float64) int {
	k := sort.Search(len(g.edges), func(i int) bool { return g.edges[i] > f }) - 1
	if k < 0 {
		return 0
	}
	if k >= g.Len() {
		return g.Len() - 1
	}
	return k
}
