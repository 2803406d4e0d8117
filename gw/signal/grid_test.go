package signal

import (
	"math"
	"testing"
)

func TestGridSpansRange(t *testing.T) {
	tests := []struct {
		fmin, fmax float64
		spd        int
		wantBins   int
	}{
		{1e-4, 1e-4, 10, 1},
		{1e-4, 1e-3 * 0.999, 10, 10},
		{1e-4, 3e-2, 3, 8},
		{1e-5, 1, 1, 6},
	}
	for _, tc := range tests {
		g := newGrid(tc.fmin, tc.fmax, tc.spd)
		if g.Len() != tc.wantBins {
			t.Fatalf("newGrid(%v,%v,%d) bins=%d want=%d", tc.fmin, tc.fmax, tc.spd, g.Len(), tc.wantBins)
		}
		if g.edges[0] != tc.fmin {
			t.Fatalf("first edge %v != fmin %v", g.edges[0], tc.fmin)
		}
		if !(g.edges[g.Len()] > tc.fmax) {
			t.Fatalf("last edge %v does not exceed fmax %v", g.edges[g.Len()], tc.fmax)
		}
		for i := 1; i < len(g.edges); i++ {
			if !(g.edges[i] > g.edges[i-1]) {
				t.Fatalf("edges not strictly increasing at %d", i)
			}
		}
		k := g.index(tc.fmax)
		if !(g.edges[k] <= tc.fmax && tc.fmax < g.edges[k+1]) {
			t.Fatalf("fmax %v outside its bin [%v, %v)", tc.fmax, g.edges[k], g.edges[k+1])
		}
	}
}

func TestGridIndex(t *testing.T) {
	g := newGrid(1, 100, 1)
	cases := []struct {
		f    float64
		want int
	}{
		{0.5, 0},
		{1, 0},
		{9.999, 0},
		{g.edges[1], 1},
		{50, 1},
		{g.edges[2], 2},
		{1e6, 2},
	}
	for _, tc := range cases {
		if got := g.index(tc.f); got != tc.want {
			t.Fatalf("index(%v)=%d want=%d", tc.f, got, tc.want)
		}
	}
	if math.Abs(g.edges[1]-10) > 1e-12 {
		t.Fatalf("edge[1]=%v want 10", g.edges[1])
	}
}
