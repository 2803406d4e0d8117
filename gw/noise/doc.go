// Package noise evaluates the analytic LISA sensitivity curve.
//
// The one-sided strain power spectral density follows Robson, Cornish & Liu
// (2019): optical metrology noise that dominates at high frequency, test-mass
// acceleration noise that rises steeply towards low frequency, and a
// transfer-function factor describing the finite arm length. An optional
// galactic confusion foreground can be added on top.
//
// All functions are pure and deterministic.
package noise
