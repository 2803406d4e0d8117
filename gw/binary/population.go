package binary

import "fmt"

// Population is a catalogue of binaries stored column-wise. Order carries no
// meaning; all columns must have the same length.
type Population struct {
	ChirpMass   []float64
	Distance    []float64
	OrbitalFreq []float64
	Ecc         []float64
}

// NewPopulation wraps the given columns and validates them.
func NewPopulation(chirpMass, distance, orbitalFreq, ecc []float64) (Population, error) {
	p := Population{
		ChirpMass:   chirpMass,
		Distance:    distance,
		OrbitalFreq: orbitalFreq,
		Ecc:         ecc,
	}
	if err := p.Validate(); err != nil {
		return Population{}, err
	}
	return p, nil
}

// FromBinaries converts row records into a Population.
func FromBinaries(bs []Binary) Population {
	p := Population{
		ChirpMass:   make([]float64, len(bs)),
		Distance:    make([]float64, len(bs)),
		OrbitalFreq: make([]float64, len(bs)),
		Ecc:         make([]float64, len(bs)),
	}
	for i, b := range bs {
		p.ChirpMass[i] = b.ChirpMass
		p.Distance[i] = b.Distance
		p.OrbitalFreq[i] = b.OrbitalFreq
		p.Ecc[i] = b.Ecc
	}
	return p
}

// Len returns the number of binaries.
func (p Population) Len() int { return len(p.ChirpMass) }

// At returns binary i without validation.
func (p Population) At(i int) Binary {
	return Binary{
		ChirpMass:   p.ChirpMass[i],
		Distance:    p.Distance[i],
		OrbitalFreq: p.OrbitalFreq[i],
		Ecc:         p.Ecc[i],
	}
}

// Validate checks column lengths and then every row. The first offending
// row is reported with its index.
func (p Population) Validate() error {
	n := len(p.ChirpMass)
	if len(p.Distance) != n || len(p.OrbitalFreq) != n || len(p.Ecc) != n {
		return fmt.Errorf("chirp mass %d, distance %d, orbital frequency %d, eccentricity %d: %w",
			n, len(p.Distance), len(p.OrbitalFreq), len(p.Ecc), ErrLengthMismatch)
	}
	for i := range n {
		if err := p.At(i).Validate(); err != nil {
			return fmt.Errorf("binary %d: %w", i, err)
		}
	}
	return nil
}
