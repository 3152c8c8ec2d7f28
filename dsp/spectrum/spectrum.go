package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrEmptyInput reports an analysis request over an empty sample sequence.
var ErrEmptyInput = errors.New("spectrum: empty sample sequence")

// Spectrum holds a one-sided magnitude spectrum. Frequencies is sorted
// ascending and has the same length as Magnitudes; Magnitudes[i] is the
// modulus of the transform coefficient at Frequencies[i] Hz.
type Spectrum struct {
	Frequencies []float64
	Magnitudes  []float64
}

// BinWidth returns the frequency spacing between adjacent bins in Hz.
func (s Spectrum) BinWidth() float64 {
	if len(s.Frequencies) < 2 {
		return 0
	}

	return s.Frequencies[1] - s.Frequencies[0]
}

// Peak returns the frequency and magnitude of the strongest bin, or zeros
// for an empty spectrum.
func (s Spectrum) Peak() (freqHz, magnitude float64) {
	if len(s.Magnitudes) == 0 {
		return 0, 0
	}

	peak := 0
	for i, v := range s.Magnitudes {
		if v > s.Magnitudes[peak] {
			peak = i
		}
	}

	return s.Frequencies[peak], s.Magnitudes[peak]
}

// Analyze computes the magnitude spectrum of samples recorded at sampleRate.
//
// The transform length equals len(samples). Bin k corresponds to
// k*sampleRate/N Hz; for an even-length transform the Nyquist bin belongs to
// the mirrored negative half and is excluded.
//
// Analyze is a pure function of its inputs and fails only on an empty sample
// sequence ([ErrEmptyInput]) or a non-positive sample rate.
func Analyze(samples []float64, sampleRate float64) (Spectrum, error) {
	if len(samples) == 0 {
		return Spectrum{}, ErrEmptyInput
	}

	if sampleRate <= 0 {
		return Spectrum{}, fmt.Errorf("spectrum: sample rate must be > 0: %f", sampleRate)
	}

	n := len(samples)
	coeffs := fourier.NewFFT(n).Coefficients(nil, samples)

	keep := (n + 1) / 2

	re := make([]float64, keep)
	im := make([]float64, keep)
	for i := range keep {
		re[i] = real(coeffs[i])
		im[i] = imag(coeffs[i])
	}

	mags := make([]float64, keep)
	vecmath.Magnitude(mags, re, im)

	freqs := make([]float64, keep)
	for k := range freqs {
		freqs[k] = float64(k) * sampleRate / float64(n)
	}

	return Spectrum{Frequencies: freqs, Magnitudes: mags}, nil
}
