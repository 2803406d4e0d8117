package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-gw/gw/harmonic"
)

var (
	// ErrCalibration reports a calibration that is not positive and finite.
	ErrCalibration = errors.New("signal: calibration must be positive and finite")
	// ErrResolution reports a non-positive number of bins per decade.
	ErrResolution = errors.New("signal: samples per decade must be > 0")
)

const (
	defaultCalibration      = 1.0
	defaultSamplesPerDecade = 10
)

// Config holds synthesis parameters.
type Config struct {
	// Calibration rescales absolute power.
	Calibration float64
	// SamplesPerDecade is the number of logarithmic bins per decade.
	// Unused in line mode but still validated.
	SamplesPerDecade int
	// LineMode selects one output point per harmonic instead of bins.
	LineMode bool
	// Harmonics controls eccentric-orbit truncation.
	Harmonics harmonic.Config
}

// DefaultConfig returns binned synthesis with unit calibration and ten bins
// per decade.
func DefaultConfig() Config {
	return Config{
		Calibration:      defaultCalibration,
		SamplesPerDecade: defaultSamplesPerDecade,
		Harmonics:        harmonic.DefaultConfig(),
	}
}

// Validate reports whether cfg can be used for synthesis.
func (cfg Config) Validate() error {
	if !(cfg.Calibration > 0) || math.IsInf(cfg.Calibration, 1) {
		return fmt.Errorf("%w: %v", ErrCalibration, cfg.Calibration)
	}
	if cfg.SamplesPerDecade <= 0 {
		return fmt.Errorf("%w: %d", ErrResolution, cfg.SamplesPerDecade)
	}
	return cfg.Harmonics.Validate()
}
