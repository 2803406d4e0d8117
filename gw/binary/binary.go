package binary

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLengthMismatch reports population columns of unequal length.
	ErrLengthMismatch = errors.New("binary: column length mismatch")
	// ErrNonPositive reports a mass, distance or frequency that is not a
	// strictly positive finite number.
	ErrNonPositive = errors.New("binary: value must be positive and finite")
	// ErrEccentricity reports an eccentricity outside [0, 1).
	ErrEccentricity = errors.New("binary: eccentricity must be in [0, 1)")
)

// Binary is a single gravitational-wave source.
type Binary struct {
	ChirpMass   float64 // solar masses
	Distance    float64
	OrbitalFreq float64 // Hz
	Ecc         float64
}

// New returns a validated Binary.
func New(chirpMass, distance, orbitalFreq, ecc float64) (Binary, error) {
	b := Binary{ChirpMass: chirpMass, Distance: distance, OrbitalFreq: orbitalFreq, Ecc: ecc}
	if err := b.Validate(); err != nil {
		return Binary{}, err
	}
	return b, nil
}

// FromComponents builds a Binary from component masses and orbital period.
func FromComponents(m1, m2, distance, period, ecc float64) (Binary, error) {
	if !positive(period) {
		return Binary{}, fmt.Errorf("orbital period %v: %w", period, ErrNonPositive)
	}
	mc, err := ChirpMass(m1, m2)
	if err != nil {
		return Binary{}, err
	}
	return New(mc, distance, 1/period, ecc)
}

// Validate checks the physical domain of every field.
func (b Binary) Validate() error {
	switch {
	case !positive(b.ChirpMass):
		return fmt.Errorf("chirp mass %v: %w", b.ChirpMass, ErrNonPositive)
	case !positive(b.Distance):
		return fmt.Errorf("distance %v: %w", b.Distance, ErrNonPositive)
	case !positive(b.OrbitalFreq):
		return fmt.Errorf("orbital frequency %v: %w", b.OrbitalFreq, ErrNonPositive)
	case !(b.Ecc >= 0 && b.Ecc < 1):
		return fmt.Errorf("eccentricity %v: %w", b.Ecc, ErrEccentricity)
	}
	return nil
}

// GWFrequency returns the emission frequency of harmonic n.
func (b Binary) GWFrequency(n int) float64 {
	return float64(n) * b.OrbitalFreq
}

// ChirpMass returns (m1*m2)^(3/5) / (m1+m2)^(1/5).
func ChirpMass(m1, m2 float64) (float64, error) {
	if !positive(m1) || !positive(m2) {
		return 0, fmt.Errorf("component masses %v, %v: %w", m1, m2, ErrNonPositive)
	}
	return math.Pow(m1*m2, 3.0/5.0) / math.Pow(m1+m2, 1.0/5.0), nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
