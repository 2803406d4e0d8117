// Package realize turns a line spectrum into a random-phase strain time
// series and estimates the power spectral density of a time series.
//
// Together they check the incoherent-sum assumption behind binned signal
// spectra: lines with independent random phases add in power, so the
// integrated periodogram of a realization matches the summed line powers.
package realize
