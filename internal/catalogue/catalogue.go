// Package catalogue loads binary populations from CSV tables and converts
// them to SI units: chirp mass in kg, distance in m, orbital frequency in Hz.
// [Calibration] turns a dimensionless coefficient into the matching signal
// calibration, so that synthesized PSDs land on the scale of the strain
// noise PSD.
//
// Expected columns (any order, extra columns ignored):
//
//	mass_1, mass_2   component masses [Msun]
//	R_0, z_0         galactocentric cylindrical radius and height [kpc]
//	theta_0          galactocentric azimuth [rad]
//	porb             orbital period [days]
//	ecc              eccentricity (optional, defaults to 0)
package catalogue

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-gw/gw/binary"
)

const (
	// SunRadius is the Sun's galactocentric distance in kpc.
	SunRadius = 8.0

	SolarMass  = 1.988409870698051e30  // kg (IAU 2015)
	Kiloparsec = 3.0856775814913673e19 // m

	gravitationalConstant = 6.67430e-11 // m^3 kg^-1 s^-2 (CODATA 2018)
	speedOfLight          = 299792458.0 // m/s
	secondsPerDay         = 86400.0
)

// Calibration returns the signal calibration for populations loaded by this
// package: c0 * G^(10/3) / c^8. The default c0 of 1.3 places the binned
// signal PSD of a galactic population on the scale of the strain noise PSD.
func Calibration(c0 float64) float64 {
	return c0 * math.Pow(gravitationalConstant, 10.0/3.0) / math.Pow(speedOfLight, 8)
}

var requiredColumns = []string{"mass_1", "mass_2", "R_0", "z_0", "theta_0", "porb"}

// ErrColumn reports a missing required column.
var ErrColumn = errors.New("catalogue: missing column")

// Record is one catalogue row in catalogue units.
type Record struct {
	Mass1, Mass2 float64 // Msun
	R0, Z0       float64 // kpc
	Theta0       float64 // rad
	PorbDays     float64
	Ecc          float64
}

// Distance returns the heliocentric distance in kpc, placing the Sun at
// (SunRadius, 0, 0) in galactocentric coordinates.
func (r Record) Distance() float64 {
	dx := SunRadius - r.R0*math.Cos(r.Theta0)
	dy := r.R0 * math.Sin(r.Theta0)
	return math.Sqrt(r.Z0*r.Z0 + dx*dx + dy*dy)
}

// OrbitalFreq returns 1/P_orb in Hz.
func (r Record) OrbitalFreq() float64 {
	return 1 / (r.PorbDays * secondsPerDay)
}

// Binary converts the record to a validated source in SI units.
func (r Record) Binary() (binary.Binary, error) {
	return binary.FromComponents(r.Mass1*SolarMass, r.Mass2*SolarMass, r.Distance()*Kiloparsec, r.PorbDays*secondsPerDay, r.Ecc)
}

// Read parses a CSV catalogue with a header row.
func Read(in io.Reader) ([]Record, error) {
	cr := csv.NewReader(in)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("catalogue header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrColumn, c)
		}
	}
	eccCol, hasEcc := idx["ecc"]

	var recs []Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalogue row %d: %w", row, err)
		}
		get := func(col int) (float64, error) {
			return strconv.ParseFloat(strings.TrimSpace(fields[col]), 64)
		}

		var vals [6]float64
		for i, c := range requiredColumns {
			v, err := get(idx[c])
			if err != nil {
				return nil, fmt.Errorf("catalogue row %d column %s: %w", row, c, err)
			}
			vals[i] = v
		}
		rec := Record{
			Mass1: vals[0], Mass2: vals[1],
			R0: vals[2], Z0: vals[3], Theta0: vals[4],
			PorbDays: vals[5],
		}
		if hasEcc {
			if rec.Ecc, err = get(eccCol); err != nil {
				return nil, fmt.Errorf("catalogue row %d column ecc: %w", row, err)
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Population converts records into a validated population in SI units.
func Population(recs []Record) (binary.Population, error) {
	bs := make([]binary.Binary, len(recs))
	for i, r := range recs {
		b, err := r.Binary()
		if err != nil {
			return binary.Population{}, fmt.Errorf("catalogue row %d: %w", i+1, err)
		}
		bs[i] = b
	}
	return binary.FromBinaries(bs), nil
}

// Load reads the CSV file at path and converts it into a population.
func Load(path string) (binary.Population, error) {
	f, err := os.Open(path)
	if err != nil {
		return binary.Population{}, err
	}
	defer f.Close()

	recs, err := Read(f)
	if err != nil {
		return binary.Population{}, fmt.Errorf("%s: %w", path, err)
	}
	return Population(recs)
}
