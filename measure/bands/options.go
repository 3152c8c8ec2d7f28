package bands

// Config defines band boundaries and verdict thresholds.
type Config struct {
	LowBand  Range
	HighBand Range

	// NormalLowRatio is the low-band percentage above which the verdict is
	// normal-leaning; StenosisHighRatio the high-band percentage above which
	// it is stenosis-leaning.
	NormalLowRatio    float64
	StenosisHighRatio float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default bands and thresholds.
func DefaultConfig() Config {
	return Config{
		LowBand:           Range{MinHz: DefaultLowBandMinHz, MaxHz: DefaultLowBandMaxHz},
		HighBand:          Range{MinHz: DefaultHighBandMinHz, MaxHz: DefaultHighBandMaxHz},
		NormalLowRatio:    DefaultNormalLowRatio,
		StenosisHighRatio: DefaultStenosisHighRatio,
	}
}

// WithLowBand sets the low-frequency band.
func WithLowBand(minHz, maxHz float64) Option {
	return func(cfg *Config) {
		if minHz >= 0 && maxHz > minHz {
			cfg.LowBand = Range{MinHz: minHz, MaxHz: maxHz}
		}
	}
}

// WithHighBand sets the high-frequency band.
func WithHighBand(minHz, maxHz float64) Option {
	return func(cfg *Config) {
		if minHz >= 0 && maxHz > minHz {
			cfg.HighBand = Range{MinHz: minHz, MaxHz: maxHz}
		}
	}
}

// WithThresholds sets the verdict thresholds in percent.
func WithThresholds(normalLowRatio, stenosisHighRatio float64) Option {
	return func(cfg *Config) {
		if normalLowRatio > 0 && normalLowRatio <= 100 {
			cfg.NormalLowRatio = normalLowRatio
		}

		if stenosisHighRatio > 0 && stenosisHighRatio <= 100 {
			cfg.StenosisHighRatio = stenosisHighRatio
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
