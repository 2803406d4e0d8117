package binary

import (
	"errors"
	"math"
	"testing"
)

func TestChirpMassEqualMasses(t *testing.T) {
	// For m1 = m2 = m the chirp mass is m * 2^(-1/5).
	got, err := ChirpMass(0.6, 0.6)
	if err != nil {
		t.Fatalf("ChirpMass error: %v", err)
	}
	want := 0.6 * math.Pow(2, -0.2)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("ChirpMass=%v want=%v", got, want)
	}
}

func TestChirpMassRejectsNonPositive(t *testing.T) {
	for _, m := range [][2]float64{{0, 1}, {1, -1}, {math.NaN(), 1}, {1, math.Inf(1)}} {
		if _, err := ChirpMass(m[0], m[1]); !errors.Is(err, ErrNonPositive) {
			t.Fatalf("ChirpMass(%v, %v) err=%v want ErrNonPositive", m[0], m[1], err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		b    Binary
		want error
	}{
		{"valid", Binary{0.7, 8, 1.0 / 3600, 0}, nil},
		{"valid eccentric", Binary{0.7, 8, 1e-4, 0.95}, nil},
		{"zero chirp mass", Binary{0, 8, 1e-4, 0}, ErrNonPositive},
		{"negative distance", Binary{0.7, -1, 1e-4, 0}, ErrNonPositive},
		{"zero frequency", Binary{0.7, 8, 0, 0}, ErrNonPositive},
		{"nan frequency", Binary{0.7, 8, math.NaN(), 0}, ErrNonPositive},
		{"ecc one", Binary{0.7, 8, 1e-4, 1}, ErrEccentricity},
		{"ecc negative", Binary{0.7, 8, 1e-4, -0.1}, ErrEccentricity},
		{"ecc nan", Binary{0.7, 8, 1e-4, math.NaN()}, ErrEccentricity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.b.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("err=%v want %v", err, tc.want)
			}
		})
	}
}

func TestFromComponents(t *testing.T) {
	b, err := FromComponents(0.6, 0.6, 8, 3600, 0.1)
	if err != nil {
		t.Fatalf("FromComponents error: %v", err)
	}
	if math.Abs(b.OrbitalFreq-1.0/3600) > 1e-18 {
		t.Fatalf("OrbitalFreq=%v", b.OrbitalFreq)
	}
	if b.GWFrequency(2) != 2*b.OrbitalFreq {
		t.Fatalf("GWFrequency(2)=%v", b.GWFrequency(2))
	}
	if _, err := FromComponents(0.6, 0.6, 8, 0, 0); !errors.Is(err, ErrNonPositive) {
		t.Fatalf("zero period err=%v", err)
	}
}

func TestPopulationValidate(t *testing.T) {
	_, err := NewPopulation([]float64{1, 1}, []float64{1}, []float64{1, 1}, []float64{0, 0})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err=%v want ErrLengthMismatch", err)
	}

	_, err = NewPopulation([]float64{1, 0}, []float64{1, 1}, []float64{1, 1}, []float64{0, 0})
	if !errors.Is(err, ErrNonPositive) {
		t.Fatalf("err=%v want ErrNonPositive", err)
	}

	p, err := NewPopulation(nil, nil, nil, nil)
	if err != nil || p.Len() != 0 {
		t.Fatalf("empty population: len=%d err=%v", p.Len(), err)
	}
}

func TestFromBinariesRoundTrip(t *testing.T) {
	bs := []Binary{{0.7, 8, 1e-4, 0}, {0.3, 2, 2e-3, 0.5}}
	p := FromBinaries(bs)
	if p.Len() != 2 {
		t.Fatalf("Len=%d", p.Len())
	}
	for i := range bs {
		if p.At(i) != bs[i] {
			t.Fatalf("At(%d)=%+v want %+v", i, p.At(i), bs[i])
		}
	}
}
