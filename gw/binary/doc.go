// Package binary describes compact binary gravitational-wave sources.
//
// A [Binary] carries the quantities the signal synthesizer needs: chirp mass
// in solar masses, distance in the caller's length unit, orbital frequency in
// Hz and orbital eccentricity. A [Population] holds the same quantities as
// parallel slices, which is the shape catalogues are usually loaded in.
package binary
