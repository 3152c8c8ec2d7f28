// Package wave decodes WAV container bytes into a normalized monophonic
// waveform suitable for spectral analysis.
package wave

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV fmt-chunk audio format codes.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// Waveform holds a decoded clip: one channel of float samples in [-1, 1].
type Waveform struct {
	SampleRate int
	Samples    []float64
}

// Duration returns the clip length in seconds.
func (w *Waveform) Duration() float64 {
	if w.SampleRate <= 0 {
		return 0
	}

	return float64(len(w.Samples)) / float64(w.SampleRate)
}

// Decode parses WAV bytes and returns the contained audio as a mono float
// waveform. Multi-channel audio is collapsed by taking the arithmetic mean
// across channels at each frame. Integer encodings are normalized to [-1, 1]
// (16-bit by 1/32768, 32-bit by 1/2147483648); IEEE-float samples pass
// through unchanged.
//
// Malformed or unsupported input fails with an error wrapping [ErrDecode].
// The returned Waveform holds no reference to data.
func Decode(data []byte) (*Waveform, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: not a RIFF/WAVE container", ErrDecode)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return fromBuffer(buf, int(d.WavAudioFormat), int(d.BitDepth))
}

func fromBuffer(buf *audio.IntBuffer, format, bitDepth int) (*Waveform, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: missing format description", ErrDecode)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("%w: invalid channel count %d", ErrDecode, channels)
	}

	if buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: invalid sample rate %d", ErrDecode, buf.Format.SampleRate)
	}

	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, fmt.Errorf("%w: zero-length payload", ErrDecode)
	}

	convert, err := sampleConverter(format, bitDepth)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, frames)
	for i := range samples {
		sum := 0.0
		for c := range channels {
			sum += convert(buf.Data[i*channels+c])
		}

		samples[i] = sum / float64(channels)
	}

	return &Waveform{
		SampleRate: buf.Format.SampleRate,
		Samples:    samples,
	}, nil
}

func sampleConverter(format, bitDepth int) (func(int) float64, error) {
	switch {
	case format == formatIEEEFloat && bitDepth == 32:
		// The decoder reads IEEE-float frames as raw little-endian words,
		// so the bit pattern has to be reinterpreted here.
		return func(v int) float64 {
			return float64(math.Float32frombits(uint32(int32(v))))
		}, nil
	case format == formatPCM && bitDepth == 16:
		return func(v int) float64 {
			return float64(v) / 32768.0
		}, nil
	case format == formatPCM && bitDepth == 32:
		return func(v int) float64 {
			return float64(v) / 2147483648.0
		}, nil
	}

	return nil, fmt.Errorf("%w: unsupported encoding (format %d, %d-bit)", ErrDecode, format, bitDepth)
}
