// Package harmonic decomposes gravitational-wave emission from an eccentric
// orbit into harmonics of the orbital frequency.
//
// The relative power radiated in harmonic n follows Peters & Mathews (1963):
//
//	g(n,e) = n^4/32 * { [J(n-2) - 2e J(n-1) + 2/n J(n) + 2e J(n+1) - J(n+2)]^2
//	                  + (1-e^2) [J(n-2) - 2 J(n) + J(n+2)]^2
//	                  + 4/(3n^2) J(n)^2 }
//
// with Bessel functions of the first kind evaluated at n*e. Summed over all n
// it equals the enhancement factor F(e). [Weight] divides by F(e), so weights
// for a fixed eccentricity sum to one and Weight(2, 0) = 1.
package harmonic
