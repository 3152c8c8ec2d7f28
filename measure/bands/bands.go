package bands

// Default band boundaries and verdict thresholds. The gap between the low
// and high band is deliberately excluded from the ratio to sharpen the
// separation between the two spectral signatures.
const (
	DefaultLowBandMinHz  = 0.0
	DefaultLowBandMaxHz  = 500.0
	DefaultHighBandMinHz = 1000.0
	DefaultHighBandMaxHz = 3000.0

	DefaultNormalLowRatio    = 70.0
	DefaultStenosisHighRatio = 40.0
)

// Verdict is the categorical reading of the band-energy balance.
type Verdict int

const (
	VerdictMixed Verdict = iota
	VerdictNormalLeaning
	VerdictStenosisLeaning
)

// String returns a short human-readable verdict label.
func (v Verdict) String() string {
	switch v {
	case VerdictNormalLeaning:
		return "normal-leaning"
	case VerdictStenosisLeaning:
		return "stenosis-leaning"
	default:
		return "mixed"
	}
}

// Range is an inclusive frequency interval in Hz.
type Range struct {
	MinHz float64
	MaxHz float64
}

// Contains reports whether freqHz falls inside the interval.
func (r Range) Contains(freqHz float64) bool {
	return freqHz >= r.MinHz && freqHz <= r.MaxHz
}

// Ratios holds the relative energy per band in percent and the derived
// verdict. LowRatio+HighRatio is 100 when either band carries energy, and
// both are exactly 0 when neither does.
type Ratios struct {
	LowRatio  float64
	HighRatio float64
	Verdict   Verdict
}

// Classifier computes band-energy ratios from magnitude spectra.
type Classifier struct {
	cfg Config
}

// NewClassifier creates a classifier with the given options applied to the
// default configuration.
func NewClassifier(opts ...Option) *Classifier {
	return &Classifier{cfg: ApplyOptions(opts...)}
}

// Classify sums the spectral magnitude falling into each band and converts
// the two sums into percentages of their total.
//
// Frequencies and magnitudes are parallel slices as produced by a spectrum
// analysis; extra elements in the longer slice are ignored. When the total
// band energy is zero both ratios are 0 by policy, never NaN. A verdict is
// always produced.
func (c *Classifier) Classify(frequencies, magnitudes []float64) Ratios {
	n := len(frequencies)
	if len(magnitudes) < n {
		n = len(magnitudes)
	}

	lowPower := 0.0
	highPower := 0.0

	for i := range n {
		switch f := frequencies[i]; {
		case c.cfg.LowBand.Contains(f):
			lowPower += magnitudes[i]
		case c.cfg.HighBand.Contains(f):
			highPower += magnitudes[i]
		}
	}

	var r Ratios

	if total := lowPower + highPower; total > 0 {
		r.LowRatio = 100 * lowPower / total
		r.HighRatio = 100 * highPower / total
	}

	r.Verdict = c.verdict(r.LowRatio, r.HighRatio)

	return r
}

// First match wins; the rule order is part of the contract.
func (c *Classifier) verdict(lowRatio, highRatio float64) Verdict {
	switch {
	case lowRatio > c.cfg.NormalLowRatio:
		return VerdictNormalLeaning
	case highRatio > c.cfg.StenosisHighRatio:
		return VerdictStenosisLeaning
	default:
		return VerdictMixed
	}
}

// Classify is a one-shot classification with the default configuration.
func Classify(frequencies, magnitudes []float64) Ratios {
	return NewClassifier().Classify(frequencies, magnitudes)
}
