package noise

// ObservationPeriod selects the galactic confusion foreground fit.
type ObservationPeriod int

const (
	// NoConfusion evaluates the instrument noise only.
	NoConfusion ObservationPeriod = iota
	HalfYear
	OneYear
	TwoYears
	FourYears
)

const (
	defaultArmLength = 2.5e9   // m
	defaultOMSNoise  = 1.5e-11 // m/sqrt(Hz)
	defaultAccNoise  = 3e-15   // m s^-2/sqrt(Hz)
)

// Config holds the instrument parameters.
type Config struct {
	ArmLength float64
	OMSNoise  float64
	AccNoise  float64
	Confusion ObservationPeriod
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the LISA design parameters without confusion noise.
func DefaultConfig() Config {
	return Config{
		ArmLength: defaultArmLength,
		OMSNoise:  defaultOMSNoise,
		AccNoise:  defaultAccNoise,
		Confusion: NoConfusion,
	}
}

// WithArmLength sets the arm length in metres.
func WithArmLength(meters float64) Option {
	return func(cfg *Config) {
		if meters > 0 {
			cfg.ArmLength = meters
		}
	}
}

// WithOMSNoise sets the single-link optical metrology noise amplitude.
func WithOMSNoise(amplitude float64) Option {
	return func(cfg *Config) {
		if amplitude > 0 {
			cfg.OMSNoise = amplitude
		}
	}
}

// WithAccelerationNoise sets the single test-mass acceleration noise amplitude.
func WithAccelerationNoise(amplitude float64) Option {
	return func(cfg *Config) {
		if amplitude > 0 {
			cfg.AccNoise = amplitude
		}
	}
}

// WithConfusion adds the galactic foreground for the given mission duration.
// Unknown periods are ignored.
func WithConfusion(p ObservationPeriod) Option {
	return func(cfg *Config) {
		if p >= NoConfusion && p <= FourYears {
			cfg.Confusion = p
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
