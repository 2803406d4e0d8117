// Package config holds the gwpsd command configuration.
//
// Values are layered, lowest precedence first: built-in defaults, an optional
// YAML file, GWPSD_* environment variables (nested keys joined with "_"),
// and command-line flags.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-gw/gw/harmonic"
	"github.com/cwbudde/algo-gw/gw/noise"
	"github.com/cwbudde/algo-gw/gw/signal"
	"github.com/cwbudde/algo-gw/internal/catalogue"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "GWPSD"

var validate = validator.New()

// Config holds all configuration for the command.
type Config struct {
	Catalogue string       `mapstructure:"catalogue" yaml:"catalogue" validate:"required"`
	Signal    SignalConfig `mapstructure:"signal" yaml:"signal"`
	Noise     NoiseConfig  `mapstructure:"noise" yaml:"noise"`
	Output    OutputConfig `mapstructure:"output" yaml:"output"`
	LogLevel  string       `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
}

// SignalConfig holds synthesis settings.
type SignalConfig struct {
	// Calibration is the dimensionless coefficient passed to
	// catalogue.Calibration.
	Calibration      float64 `mapstructure:"calibration" yaml:"calibration" validate:"gt=0"`
	SamplesPerDecade int     `mapstructure:"samples_per_decade" yaml:"samples_per_decade" validate:"gt=0"`
	LineMode         bool    `mapstructure:"line_mode" yaml:"line_mode"`
	RelativeCutoff   float64 `mapstructure:"relative_cutoff" yaml:"relative_cutoff" validate:"gt=0,lt=1"`
	MaxHarmonics     int     `mapstructure:"max_harmonics" yaml:"max_harmonics" validate:"gte=2"`
}

// NoiseConfig holds the noise grid and foreground settings.
type NoiseConfig struct {
	FMin      float64 `mapstructure:"fmin" yaml:"fmin" validate:"gt=0"`
	FMax      float64 `mapstructure:"fmax" yaml:"fmax" validate:"gtfield=FMin"`
	Points    int     `mapstructure:"points" yaml:"points" validate:"gte=2"`
	Confusion string  `mapstructure:"confusion" yaml:"confusion" validate:"oneof=none 0.5yr 1yr 2yr 4yr"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=tsv yaml"`
	Path   string `mapstructure:"path" yaml:"path"`
	// SNRThreshold marks signal points whose PSD exceeds the noise by this factor.
	SNRThreshold float64 `mapstructure:"snr_threshold" yaml:"snr_threshold" validate:"gt=0"`
}

var periods = map[string]noise.ObservationPeriod{
	"none":  noise.NoConfusion,
	"0.5yr": noise.HalfYear,
	"1yr":   noise.OneYear,
	"2yr":   noise.TwoYears,
	"4yr":   noise.FourYears,
}

// Period returns the confusion foreground selection.
func (n NoiseConfig) Period() noise.ObservationPeriod {
	return periods[n.Confusion]
}

// Synthesis returns the signal package configuration for SI populations
// loaded by the catalogue package.
func (s SignalConfig) Synthesis() signal.Config {
	return signal.Config{
		Calibration:      catalogue.Calibration(s.Calibration),
		SamplesPerDecade: s.SamplesPerDecade,
		LineMode:         s.LineMode,
		Harmonics: harmonic.Config{
			RelativeCutoff: s.RelativeCutoff,
			MaxHarmonics:   s.MaxHarmonics,
		},
	}
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"catalogue":          "catalogue",
	"calibration":        "signal.calibration",
	"samples-per-decade": "signal.samples_per_decade",
	"lines":              "signal.line_mode",
	"cutoff":             "signal.relative_cutoff",
	"max-harmonics":      "signal.max_harmonics",
	"fmin":               "noise.fmin",
	"fmax":               "noise.fmax",
	"points":             "noise.points",
	"confusion":          "noise.confusion",
	"format":             "output.format",
	"out":                "output.path",
	"snr-threshold":      "output.snr_threshold",
	"log-level":          "log_level",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("signal.calibration", 1.3)
	v.SetDefault("signal.samples_per_decade", 10)
	v.SetDefault("signal.line_mode", false)
	v.SetDefault("signal.relative_cutoff", harmonic.DefaultRelativeCutoff)
	v.SetDefault("signal.max_harmonics", harmonic.DefaultMaxHarmonics)
	v.SetDefault("noise.fmin", 1e-5)
	v.SetDefault("noise.fmax", 1.0)
	v.SetDefault("noise.points", 1000)
	v.SetDefault("noise.confusion", "none")
	v.SetDefault("output.format", "tsv")
	v.SetDefault("output.path", "")
	v.SetDefault("output.snr_threshold", 1.0)
	v.SetDefault("log_level", "info")
}

// RegisterFlags adds every configuration flag to fs. Flags only override
// other sources when set explicitly.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML configuration file")
	fs.String("catalogue", "", "CSV catalogue of binaries")
	fs.Float64("calibration", 1.3, "dimensionless signal calibration, scaled by G^(10/3)/c^8")
	fs.Int("samples-per-decade", 10, "logarithmic bins per decade")
	fs.Bool("lines", false, "emit one row per harmonic instead of bins")
	fs.Float64("cutoff", harmonic.DefaultRelativeCutoff, "harmonic cutoff relative to the strongest harmonic")
	fs.Int("max-harmonics", harmonic.DefaultMaxHarmonics, "maximum harmonic index per binary")
	fs.Float64("fmin", 1e-5, "lowest noise-curve frequency [Hz]")
	fs.Float64("fmax", 1.0, "highest noise-curve frequency [Hz]")
	fs.Int("points", 1000, "number of noise-curve points")
	fs.String("confusion", "none", "galactic foreground: none, 0.5yr, 1yr, 2yr, 4yr")
	fs.String("format", "tsv", "output format: tsv or yaml")
	fs.String("out", "", "output file (default stdout)")
	fs.Float64("snr-threshold", 1.0, "signal/noise ratio reported as detectable")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
}

// Load builds the configuration from defaults, the file named by the
// "config" flag, the environment and the flags in fs.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about.
	if err := v.BindEnv("catalogue"); err != nil {
		return nil, fmt.Errorf("bind env catalogue: %w", err)
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Dump writes the effective configuration as YAML.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	field = strings.TrimPrefix(field, "config.")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, e.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, strings.ToLower(e.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
