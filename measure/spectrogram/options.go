package spectrogram

import "github.com/cwbudde/shunt-dsp/dsp/window"

// Default analysis parameters: 1024-sample windows with 50% overlap, Hann
// weighting, display limited to 0-3000 Hz and a -80..0 dB intensity range.
const (
	DefaultWindowSize = 1024
	DefaultOverlap    = 512
	DefaultMaxFreqHz  = 3000.0
	DefaultFloorDB    = -80.0
	DefaultCeilDB     = 0.0
)

// Config defines short-time analysis parameters.
type Config struct {
	WindowSize int
	Overlap    int
	WindowType window.Type

	// MaxFreqHz caps the returned frequency axis; bins above it are
	// computed but not returned.
	MaxFreqHz float64

	// FloorDB and CeilDB bound the returned intensity values. Values
	// outside the range are saturated, not rejected.
	FloorDB float64
	CeilDB  float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default analysis parameters.
func DefaultConfig() Config {
	return Config{
		WindowSize: DefaultWindowSize,
		Overlap:    DefaultOverlap,
		WindowType: window.TypeHann,
		MaxFreqHz:  DefaultMaxFreqHz,
		FloorDB:    DefaultFloorDB,
		CeilDB:     DefaultCeilDB,
	}
}

// WithWindowSize sets the analysis window length in samples.
func WithWindowSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.WindowSize = size
		}
	}
}

// WithOverlap sets the overlap between consecutive windows in samples.
func WithOverlap(overlap int) Option {
	return func(cfg *Config) {
		if overlap >= 0 {
			cfg.Overlap = overlap
		}
	}
}

// WithWindowType sets the analysis window function.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.WindowType = t
	}
}

// WithMaxFrequency caps the returned frequency axis in Hz.
func WithMaxFrequency(maxHz float64) Option {
	return func(cfg *Config) {
		if maxHz > 0 {
			cfg.MaxFreqHz = maxHz
		}
	}
}

// WithIntensityRange sets the dB display floor and ceiling.
func WithIntensityRange(floorDB, ceilDB float64) Option {
	return func(cfg *Config) {
		if floorDB < ceilDB {
			cfg.FloorDB = floorDB
			cfg.CeilDB = ceilDB
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
