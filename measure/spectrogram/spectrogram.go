package spectrogram

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/shunt-dsp/dsp/core"
	"github.com/cwbudde/shunt-dsp/dsp/window"
)

// ErrTooShort reports a waveform shorter than one analysis window.
var ErrTooShort = errors.New("spectrogram: waveform shorter than one window")

// Spectrogram is a time-frequency intensity grid. Intensity is indexed
// [time][frequency] and holds dB values clamped to the configured display
// range; its dimensions match len(TimeBins) x len(FreqBins).
type Spectrogram struct {
	TimeBins  []float64 // window-center times in seconds, ascending
	FreqBins  []float64 // Hz, ascending
	Intensity [][]float64
}

// Builder performs short-time spectral decomposition with a reusable FFT
// plan. A Builder is bound to one sample rate and is not safe for concurrent
// use; for one-shot analysis or parallel callers use [Build].
type Builder struct {
	cfg        Config
	sampleRate float64
	plan       *algofft.Plan[complex128]
	win        []float64
}

// NewBuilder creates a Builder for waveforms recorded at sampleRate.
func NewBuilder(sampleRate float64, opts ...Option) (*Builder, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrogram: sample rate must be > 0: %f", sampleRate)
	}

	cfg := ApplyOptions(opts...)

	if cfg.Overlap >= cfg.WindowSize {
		return nil, fmt.Errorf("spectrogram: overlap %d must be smaller than window %d", cfg.Overlap, cfg.WindowSize)
	}

	plan, err := algofft.NewPlan64(cfg.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("spectrogram: create fft plan: %w", err)
	}

	return &Builder{
		cfg:        cfg,
		sampleRate: sampleRate,
		plan:       plan,
		win:        window.Generate(cfg.WindowType, cfg.WindowSize),
	}, nil
}

// Build slides the analysis window across samples and returns the resulting
// grid. The last partial window is discarded.
//
// Fails with an error wrapping [ErrTooShort] when samples is shorter than one
// window.
func (b *Builder) Build(samples []float64) (*Spectrogram, error) {
	w := b.cfg.WindowSize
	hop := w - b.cfg.Overlap

	if len(samples) < w {
		return nil, fmt.Errorf("%w: %d samples, window is %d", ErrTooShort, len(samples), w)
	}

	frames := 1 + (len(samples)-w)/hop

	binHz := b.sampleRate / float64(w)

	keep := int(b.cfg.MaxFreqHz/binHz) + 1
	if limit := w/2 + 1; keep > limit {
		keep = limit
	}

	freqBins := make([]float64, keep)
	for k := range freqBins {
		freqBins[k] = float64(k) * binHz
	}

	timeBins := make([]float64, frames)
	linear := make([][]float64, frames)

	in := make([]complex128, w)
	out := make([]complex128, w)
	re := make([]float64, keep)
	im := make([]float64, keep)

	peak := 0.0

	for f := range frames {
		start := f * hop
		timeBins[f] = (float64(start) + float64(w)/2) / b.sampleRate

		for i := range w {
			in[i] = complex(samples[start+i]*b.win[i], 0)
		}

		if err := b.plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("spectrogram: fft: %w", err)
		}

		for i := range keep {
			re[i] = real(out[i])
			im[i] = imag(out[i])
		}

		row := make([]float64, keep)
		vecmath.Magnitude(row, re, im)

		for _, v := range row {
			if v > peak {
				peak = v
			}
		}

		linear[f] = row
	}

	return &Spectrogram{
		TimeBins:  timeBins,
		FreqBins:  freqBins,
		Intensity: b.toIntensity(linear, peak),
	}, nil
}

// toIntensity converts linear magnitudes to clamped dB relative to peak.
// An all-silent grid maps to the display floor.
func (b *Builder) toIntensity(linear [][]float64, peak float64) [][]float64 {
	out := make([][]float64, len(linear))

	for f, row := range linear {
		dst := make([]float64, len(row))

		for i, v := range row {
			if peak == 0 {
				dst[i] = b.cfg.FloorDB
				continue
			}

			dst[i] = core.Clamp(core.LinearToDB(v/peak), b.cfg.FloorDB, b.cfg.CeilDB)
		}

		out[f] = dst
	}

	return out
}

// Build is a one-shot short-time analysis. It allocates all state fresh and
// is safe to call from concurrent goroutines.
func Build(samples []float64, sampleRate float64, opts ...Option) (*Spectrogram, error) {
	b, err := NewBuilder(sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	return b.Build(samples)
}
