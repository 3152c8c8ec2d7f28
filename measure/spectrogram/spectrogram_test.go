package spectrogram

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/shunt-dsp/internal/testutil"
)

func TestBuildTooShort(t *testing.T) {
	_, err := Build(make([]float64, DefaultWindowSize-1), 8000)
	if !errors.Is(err, ErrTooShort) {
		t.Fatalf("err = %v, want ErrTooShort", err)
	}
}

func TestBuildSingleWindow(t *testing.T) {
	sg, err := Build(testutil.DeterministicSine(440, 8000, 0.5, DefaultWindowSize), 8000)
	if err != nil {
		t.Fatal(err)
	}

	if len(sg.TimeBins) != 1 {
		t.Fatalf("time bins = %d, want 1 for exactly one window of input", len(sg.TimeBins))
	}

	// Window centered at W/2 samples.
	wantTime := float64(DefaultWindowSize) / 2 / 8000
	if math.Abs(sg.TimeBins[0]-wantTime) > 1e-12 {
		t.Errorf("time bin = %v, want %v", sg.TimeBins[0], wantTime)
	}
}

func TestBuildGridDimensions(t *testing.T) {
	const (
		sampleRate = 8000.0
		length     = 8000
	)

	sg, err := Build(testutil.DeterministicNoise(7, 0.3, length), sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	hop := DefaultWindowSize - DefaultOverlap

	wantFrames := 1 + (length-DefaultWindowSize)/hop
	if len(sg.TimeBins) != wantFrames {
		t.Errorf("time bins = %d, want %d", len(sg.TimeBins), wantFrames)
	}

	// 8000/1024 Hz per bin; bins up to 3000 Hz.
	binHz := sampleRate / DefaultWindowSize

	wantBins := int(DefaultMaxFreqHz/binHz) + 1
	if len(sg.FreqBins) != wantBins {
		t.Errorf("freq bins = %d, want %d", len(sg.FreqBins), wantBins)
	}

	if top := sg.FreqBins[len(sg.FreqBins)-1]; top > DefaultMaxFreqHz {
		t.Errorf("top frequency %v exceeds %v", top, DefaultMaxFreqHz)
	}

	if len(sg.Intensity) != len(sg.TimeBins) {
		t.Fatalf("intensity rows = %d, want %d", len(sg.Intensity), len(sg.TimeBins))
	}

	for i, row := range sg.Intensity {
		if len(row) != len(sg.FreqBins) {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), len(sg.FreqBins))
		}
	}
}

func TestBuildIntensityClamped(t *testing.T) {
	sg, err := Build(testutil.DeterministicSine(500, 8000, 0.9, 4096), 8000)
	if err != nil {
		t.Fatal(err)
	}

	foundCeil := false

	for _, row := range sg.Intensity {
		for _, v := range row {
			if v < DefaultFloorDB || v > DefaultCeilDB {
				t.Fatalf("intensity %v outside [%v, %v]", v, DefaultFloorDB, DefaultCeilDB)
			}

			if v == DefaultCeilDB {
				foundCeil = true
			}
		}

		testutil.RequireFinite(t, row)
	}

	// Peak-relative scaling puts the loudest cell at exactly 0 dB.
	if !foundCeil {
		t.Error("no cell at the display ceiling")
	}
}

func TestBuildSilence(t *testing.T) {
	sg, err := Build(make([]float64, 2048), 8000)
	if err != nil {
		t.Fatal(err)
	}

	for _, row := range sg.Intensity {
		for _, v := range row {
			if v != DefaultFloorDB {
				t.Fatalf("silent cell = %v, want %v", v, DefaultFloorDB)
			}
		}
	}
}

func TestBuildToneLocalized(t *testing.T) {
	const (
		sampleRate = 8000.0
		toneHz     = 1500.0
	)

	sg, err := Build(testutil.DeterministicSine(toneHz, sampleRate, 0.8, 8192), sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	binHz := sampleRate / DefaultWindowSize

	for f, row := range sg.Intensity {
		best := 0
		for i, v := range row {
			if v > row[best] {
				best = i
			}
		}

		if got := sg.FreqBins[best]; math.Abs(got-toneHz) > binHz {
			t.Fatalf("frame %d: hottest bin at %v Hz, want within %v of %v", f, got, binHz, toneHz)
		}
	}
}

func TestBuildOptionOverrides(t *testing.T) {
	sg, err := Build(make([]float64, 512), 8000,
		WithWindowSize(256),
		WithOverlap(128),
		WithMaxFrequency(1000),
		WithIntensityRange(-60, 0),
	)
	if err != nil {
		t.Fatal(err)
	}

	if len(sg.TimeBins) != 3 {
		t.Errorf("time bins = %d, want 3", len(sg.TimeBins))
	}

	// 8000/256 = 31.25 Hz per bin; 1000 Hz keeps bins 0..32.
	if len(sg.FreqBins) != 33 {
		t.Errorf("freq bins = %d, want 33", len(sg.FreqBins))
	}

	for _, row := range sg.Intensity {
		for _, v := range row {
			if v < -60 {
				t.Fatalf("intensity %v below custom floor", v)
			}
		}
	}
}

func TestNewBuilderValidation(t *testing.T) {
	if _, err := NewBuilder(0); err == nil {
		t.Error("expected error for zero sample rate")
	}

	if _, err := NewBuilder(8000, WithWindowSize(256), WithOverlap(256)); err == nil {
		t.Error("expected error for overlap equal to window size")
	}
}
