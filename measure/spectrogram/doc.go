// Package spectrogram computes short-time magnitude spectra over sliding
// windows, producing a time-frequency intensity grid for display.
//
// Intensity is expressed in dB relative to the loudest cell of the grid and
// clamped to a fixed display range, which keeps the visual contrast stable
// across clips of very different loudness.
package spectrogram
