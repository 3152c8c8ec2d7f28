// Package analyze runs the full per-clip pipeline: container decoding,
// spectral analysis, band-energy classification and short-time decomposition.
//
// Every call allocates fresh state, so concurrent analyses of different clips
// need no coordination.
package analyze

import (
	"errors"

	"github.com/cwbudde/shunt-dsp/audio/wave"
	"github.com/cwbudde/shunt-dsp/dsp/spectrum"
	"github.com/cwbudde/shunt-dsp/measure/bands"
	"github.com/cwbudde/shunt-dsp/measure/spectrogram"
)

// Report holds everything derived from one recorded clip.
type Report struct {
	Waveform *wave.Waveform
	Spectrum spectrum.Spectrum
	Ratios   bands.Ratios

	// Spectrogram is nil when the clip is shorter than one analysis
	// window; the time-frequency view is simply unavailable then.
	Spectrogram *spectrogram.Spectrogram
}

// Option configures a pipeline run.
type Option func(*config)

type config struct {
	bandOpts []bands.Option
	gridOpts []spectrogram.Option
}

// WithBandOptions forwards options to the band-energy classifier.
func WithBandOptions(opts ...bands.Option) Option {
	return func(cfg *config) {
		cfg.bandOpts = append(cfg.bandOpts, opts...)
	}
}

// WithSpectrogramOptions forwards options to the spectrogram builder.
func WithSpectrogramOptions(opts ...spectrogram.Option) Option {
	return func(cfg *config) {
		cfg.gridOpts = append(cfg.gridOpts, opts...)
	}
}

// Clip decodes WAV bytes and derives spectrum, band ratios and spectrogram.
//
// Decode and spectrum failures abort the run. A clip too short for the
// short-time analysis still yields a Report, with Spectrogram left nil.
func Clip(data []byte, opts ...Option) (*Report, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	w, err := wave.Decode(data)
	if err != nil {
		return nil, err
	}

	sp, err := spectrum.Analyze(w.Samples, float64(w.SampleRate))
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Waveform: w,
		Spectrum: sp,
		Ratios:   bands.NewClassifier(cfg.bandOpts...).Classify(sp.Frequencies, sp.Magnitudes),
	}

	grid, err := spectrogram.Build(w.Samples, float64(w.SampleRate), cfg.gridOpts...)
	switch {
	case err == nil:
		rep.Spectrogram = grid
	case errors.Is(err, spectrogram.ErrTooShort):
		// leave the time-frequency view out
	default:
		return nil, err
	}

	return rep, nil
}
