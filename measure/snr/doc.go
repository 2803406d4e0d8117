// Package snr compares a synthesized signal curve against an instrument noise
// curve.
//
// For every signal point the noise PSD is evaluated at the same frequency and
// the ratio S_signal/S_noise is reported together with the band where the
// ratio exceeds a threshold. Noise can come from an analytic model or from a
// tabulated curve interpolated on log-log axes.
package snr
