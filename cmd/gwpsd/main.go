// Command gwpsd computes the LISA noise curve and the gravitational-wave
// power spectral density of a binary population.
//
// Usage:
//
//	gwpsd [flags] --catalogue binaries.csv
//
// The catalogue is a CSV table with columns mass_1, mass_2 [Msun], R_0, z_0
// [kpc], theta_0 [rad], porb [days] and optionally ecc. It is converted to SI
// units, and --calibration is scaled by G^(10/3)/c^8, so the binned signal PSD
// and the noise PSD are both in 1/Hz. Output is a noise curve on a logarithmic
// grid, the synthesized signal curve with its ratio to the noise, and a short
// summary. Line spectra (--lines) carry power per line rather than a PSD and
// are not compared with the noise.
//
// Examples:
//
//	gwpsd --catalogue pop.csv
//	gwpsd --catalogue pop.csv --lines --format yaml
//	gwpsd --config run.yaml --confusion 4yr --out psd.tsv
//	GWPSD_SIGNAL_CALIBRATION=2 gwpsd --catalogue pop.csv
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-gw/gw/curve"
	"github.com/cwbudde/algo-gw/gw/noise"
	"github.com/cwbudde/algo-gw/gw/signal"
	"github.com/cwbudde/algo-gw/internal/catalogue"
	"github.com/cwbudde/algo-gw/internal/config"
	"github.com/cwbudde/algo-gw/measure/snr"
	frequencystats "github.com/cwbudde/algo-gw/stats/frequency"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(fs *pflag.FlagSet, w io.Writer) func() {
	return func() {
		fmt.Fprintf(w, "Usage: gwpsd [flags] --catalogue binaries.csv\n\n")
		fmt.Fprintf(w, "Computes the LISA noise PSD and the GW PSD of a binary population.\n\n")
		fmt.Fprintf(w, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  gwpsd --catalogue pop.csv\n")
		fmt.Fprintf(w, "  gwpsd --catalogue pop.csv --lines --format yaml\n")
		fmt.Fprintf(w, "  gwpsd --config run.yaml --confusion 4yr --out psd.tsv\n")
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("gwpsd", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)
	printConfig := fs.Bool("print-config", false, "print the effective configuration and exit")
	fs.Usage = usage(fs, stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if *printConfig {
		if err := cfg.Dump(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	log := newLogger(stderr, cfg.LogLevel)
	if err := execute(cfg, stdout, log); err != nil {
		log.Error().Err(err).Msg("gwpsd failed")
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

func execute(cfg *config.Config, stdout io.Writer, log zerolog.Logger) (err error) {
	pop, err := catalogue.Load(cfg.Catalogue)
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}
	log.Info().Str("catalogue", cfg.Catalogue).Int("binaries", pop.Len()).Msg("catalogue loaded")

	grid, err := curve.LogSpace(cfg.Noise.FMin, cfg.Noise.FMax, cfg.Noise.Points)
	if err != nil {
		return err
	}
	model := noise.New(noise.WithConfusion(cfg.Noise.Period()))
	noiseCurve := curve.Curve{Frequency: grid, Power: model.Evaluate(grid)}
	log.Debug().Str("confusion", cfg.Noise.Confusion).Int("points", len(grid)).Msg("noise curve evaluated")

	synth, err := signal.NewSynthesizer(cfg.Signal.Synthesis())
	if err != nil {
		return err
	}
	sig, err := synth.Synthesize(pop)
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}
	log.Info().
		Bool("line_mode", cfg.Signal.LineMode).
		Int("points", sig.Len()).
		Msg("signal synthesized")

	stats := frequencystats.Calculate(sig)
	var cmp *snr.Result
	if !cfg.Signal.LineMode {
		res, err := snr.Analyze(sig, model, snr.Config{Threshold: cfg.Output.SNRThreshold})
		if err != nil {
			return fmt.Errorf("compare: %w", err)
		}
		cmp = &res
		log.Info().
			Float64("peak_freq", stats.PeakFreq).
			Float64("max_ratio", res.MaxRatio).
			Int("above_noise", res.AboveCount).
			Msg("signal compared with noise")
	}

	out := stdout
	if cfg.Output.Path != "" {
		f, ferr := os.Create(cfg.Output.Path)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}

	r := newReport(noiseCurve, sig, cfg.Signal.LineMode, cmp, stats)
	switch cfg.Output.Format {
	case "yaml":
		return writeYAML(out, r)
	default:
		return writeTSV(out, r)
	}
}
