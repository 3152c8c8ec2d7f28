// Package spectrum computes one-sided magnitude spectra of time-domain
// signals.
//
// The discrete Fourier transform runs over the full sample sequence with no
// windowing or zero padding, so bin k sits at exactly k*sampleRate/N Hz. Only
// the non-negative-frequency half of the transform is returned.
package spectrum
