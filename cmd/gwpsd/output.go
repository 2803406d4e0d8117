package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-gw/gw/curve"
	"github.com/cwbudde/algo-gw/measure/snr"
	frequencystats "github.com/cwbudde/algo-gw/stats/frequency"
	"gopkg.in/yaml.v3"
)

// point is one output row. Binned curves fill PSD; line spectra fill Power.
type point struct {
	Frequency float64  `yaml:"f"`
	PSD       float64  `yaml:"psd,omitempty"`
	Power     float64  `yaml:"power,omitempty"`
	Error     *float64 `yaml:"err,omitempty"`
	Ratio     *float64 `yaml:"snr,omitempty"`
}

type comparison struct {
	MaxRatio     float64 `yaml:"max_ratio"`
	MaxRatioFreq float64 `yaml:"max_ratio_freq"`
	AboveNoise   int     `yaml:"above_noise"`
	AboveLo      float64 `yaml:"above_lo,omitempty"`
	AboveHi      float64 `yaml:"above_hi,omitempty"`
}

type summary struct {
	SignalPoints int         `yaml:"signal_points"`
	LineMode     bool        `yaml:"line_mode"`
	PeakFreq     float64     `yaml:"peak_freq"`
	Peak         float64     `yaml:"peak"`
	LogCentroid  float64     `yaml:"log_centroid"`
	Comparison   *comparison `yaml:"comparison,omitempty"`
}

type report struct {
	Summary summary `yaml:"summary"`
	Noise   []point `yaml:"noise"`
	Signal  []point `yaml:"signal"`
}

// newReport assembles the output. cmp is nil for line spectra.
func newReport(noiseCurve, sig curve.Curve, lineMode bool, cmp *snr.Result, stats frequencystats.Stats) report {
	r := report{
		Summary: summary{
			SignalPoints: sig.Len(),
			LineMode:     lineMode,
			PeakFreq:     stats.PeakFreq,
			Peak:         stats.Peak,
			LogCentroid:  stats.LogCentroid,
		},
		Noise:  make([]point, noiseCurve.Len()),
		Signal: make([]point, sig.Len()),
	}
	if cmp != nil {
		r.Summary.Comparison = &comparison{
			MaxRatio:     cmp.MaxRatio,
			MaxRatioFreq: cmp.MaxRatioFreq,
			AboveNoise:   cmp.AboveCount,
			AboveLo:      cmp.AboveLo,
			AboveHi:      cmp.AboveHi,
		}
	}
	for i := range r.Noise {
		r.Noise[i] = point{Frequency: noiseCurve.Frequency[i], PSD: noiseCurve.Power[i]}
	}
	for i := range r.Signal {
		p := point{Frequency: sig.Frequency[i]}
		if lineMode {
			p.Power = sig.Power[i]
		} else {
			p.PSD = sig.Power[i]
		}
		if sig.HasError() {
			p.Error = &sig.Error[i]
		}
		if cmp != nil && i < len(cmp.Ratio) {
			p.Ratio = &cmp.Ratio[i]
		}
		r.Signal[i] = p
	}
	return r
}

func writeYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return enc.Close()
}

func writeTSV(w io.Writer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	s := r.Summary
	if _, err := fmt.Fprintf(tw, "# signal points\t%d\n# peak\t%.4e Hz\t%.4e\n", s.SignalPoints, s.PeakFreq, s.Peak); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if c := s.Comparison; c != nil {
		if _, err := fmt.Fprintf(tw, "# max signal/noise\t%.4e\tat %.4e Hz\n# above noise\t%d\n",
			c.MaxRatio, c.MaxRatioFreq, c.AboveNoise); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "\n# noise\nf [Hz]\tpsd [1/Hz]\n"); err != nil {
		return fmt.Errorf("write noise header: %w", err)
	}
	for _, p := range r.Noise {
		if _, err := fmt.Fprintf(tw, "%.6e\t%.6e\n", p.Frequency, p.PSD); err != nil {
			return fmt.Errorf("write noise row: %w", err)
		}
	}

	if s.LineMode {
		return writeLinesTSV(tw, r.Signal)
	}
	if _, err := fmt.Fprintf(tw, "\n# signal\nf [Hz]\tpsd [1/Hz]\terr [1/Hz]\tsignal/noise\n"); err != nil {
		return fmt.Errorf("write signal header: %w", err)
	}
	for _, p := range r.Signal {
		errCol, ratioCol := "-", "-"
		if p.Error != nil {
			errCol = fmt.Sprintf("%.6e", *p.Error)
		}
		if p.Ratio != nil {
			ratioCol = fmt.Sprintf("%.6e", *p.Ratio)
		}
		if _, err := fmt.Fprintf(tw, "%.6e\t%.6e\t%s\t%s\n", p.Frequency, p.PSD, errCol, ratioCol); err != nil {
			return fmt.Errorf("write signal row: %w", err)
		}
	}
	return tw.Flush()
}

func writeLinesTSV(tw *tabwriter.Writer, lines []point) error {
	if _, err := fmt.Fprintf(tw, "\n# lines\nf [Hz]\tpower\n"); err != nil {
		return fmt.Errorf("write lines header: %w", err)
	}
	for _, p := range lines {
		if _, err := fmt.Fprintf(tw, "%.6e\t%.6e\n", p.Frequency, p.Power); err != nil {
			return fmt.Errorf("write line row: %w", err)
		}
	}
	return tw.Flush()
}
