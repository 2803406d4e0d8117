// Package curve holds frequency-ordered power spectral density curves and the
// log-axis helpers used to build and compare them.
//
// Both the instrument noise model and the binary signal synthesizer produce a
// [Curve]. The package does not know how a curve was made; it only keeps
// points sorted by frequency and interpolates between them on log-log axes.
package curve
