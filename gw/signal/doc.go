// Package signal synthesizes the gravitational-wave power spectral density of
// a population of compact binaries.
//
// Every binary radiates at harmonics n*f_orb of its orbital frequency. The
// harmonics that carry a significant share of the power (see package
// harmonic) each contribute
//
//	P_n = calibration * Mc^(10/3) * f_n^(-7/3) * w(n,e) / D^2
//
// The calibration scalar absorbs every physical constant and unit choice.
//
// In line mode the result is one point per (binary, harmonic) pair. Otherwise
// the lines are summed incoherently into logarithmic frequency bins, divided
// by the bin width, and reported with a shot-noise error PSD/sqrt(count).
// Empty bins are omitted.
//
// Harmonic generation and binning run in parallel over fixed-size chunks of
// the population. Partial results are merged in chunk order, so output is
// bit-identical for a given input regardless of GOMAXPROCS.
package signal
