package wave

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/shunt-dsp/internal/testutil"
)

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode(nil)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not a wav file"))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestDecodeTruncatedHeader(t *testing.T) {
	full := testutil.PCM16WAV(8000, testutil.DeterministicSine(440, 8000, 0.5, 64))

	_, err := Decode(full[:20])
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	_, err := Decode(testutil.PCM16WAV(8000, []float64{}))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestDecodePCM16Mono(t *testing.T) {
	src := testutil.DeterministicSine(440, 8000, 0.5, 256)

	w, err := Decode(testutil.PCM16WAV(8000, src))
	if err != nil {
		t.Fatal(err)
	}

	if w.SampleRate != 8000 {
		t.Errorf("sample rate = %d, want 8000", w.SampleRate)
	}

	if len(w.Samples) != len(src) {
		t.Fatalf("decoded %d samples, want %d", len(w.Samples), len(src))
	}

	// 16-bit quantization bounds the round-trip error.
	testutil.RequireSliceNearlyEqual(t, w.Samples, src, 1.0/32768)
}

func TestDecodePCM32Mono(t *testing.T) {
	src := testutil.DeterministicSine(300, 44100, 0.9, 128)

	w, err := Decode(testutil.PCM32WAV(44100, src))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, w.Samples, src, 1.0/(1<<20))
}

func TestDecodeFloat32Mono(t *testing.T) {
	src := testutil.DeterministicSine(1000, 16000, 0.25, 64)

	w, err := Decode(testutil.Float32WAV(16000, src))
	if err != nil {
		t.Fatal(err)
	}

	// Float samples pass through unscaled; only float32 rounding applies.
	testutil.RequireSliceNearlyEqual(t, w.Samples, src, 1e-7)
}

func TestDecodeStereoMeanIdenticalChannels(t *testing.T) {
	ch := testutil.DeterministicSine(440, 8000, 0.5, 128)

	mono, err := Decode(testutil.PCM16WAV(8000, ch))
	if err != nil {
		t.Fatal(err)
	}

	stereo, err := Decode(testutil.PCM16WAV(8000, ch, ch))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, stereo.Samples, mono.Samples, 0)
}

func TestDecodeStereoMean(t *testing.T) {
	left := testutil.DC(0.5, 32)
	right := testutil.DC(-0.5, 32)

	w, err := Decode(testutil.Float32WAV(8000, left, right))
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range w.Samples {
		if math.Abs(v) > 1e-9 {
			t.Fatalf("sample %d = %v, want mean 0", i, v)
		}
	}
}

func TestDecodeNormalizationRange(t *testing.T) {
	w, err := Decode(testutil.PCM16WAV(8000, testutil.DeterministicSine(100, 8000, 1.0, 400)))
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range w.Samples {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d = %v outside [-1, 1]", i, v)
		}
	}
}

func TestDuration(t *testing.T) {
	w := &Waveform{SampleRate: 8000, Samples: make([]float64, 4000)}
	if w.Duration() != 0.5 {
		t.Errorf("duration = %v, want 0.5", w.Duration())
	}

	if (&Waveform{}).Duration() != 0 {
		t.Error("empty waveform duration should be 0")
	}
}
