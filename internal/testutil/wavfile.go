package testutil

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WAV fmt-chunk audio format codes.
const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
)

// PCM16WAV builds an in-memory WAV file with 16-bit signed PCM samples.
// Each channel slice holds float samples in [-1, 1] and all channels must
// have the same length.
func PCM16WAV(sampleRate int, channels ...[]float64) []byte {
	frames := frameCount(channels)

	var payload bytes.Buffer
	for i := range frames {
		for _, ch := range channels {
			v := int16(math.Round(clampUnit(ch[i]) * 32767))
			binary.Write(&payload, binary.LittleEndian, v)
		}
	}

	return wavFile(wavFormatPCM, 16, sampleRate, len(channels), payload.Bytes())
}

// PCM32WAV builds an in-memory WAV file with 32-bit signed PCM samples.
func PCM32WAV(sampleRate int, channels ...[]float64) []byte {
	frames := frameCount(channels)

	var payload bytes.Buffer
	for i := range frames {
		for _, ch := range channels {
			v := int32(math.Round(clampUnit(ch[i]) * 2147483647))
			binary.Write(&payload, binary.LittleEndian, v)
		}
	}

	return wavFile(wavFormatPCM, 32, sampleRate, len(channels), payload.Bytes())
}

// Float32WAV builds an in-memory WAV file with IEEE-float 32-bit samples.
func Float32WAV(sampleRate int, channels ...[]float64) []byte {
	frames := frameCount(channels)

	var payload bytes.Buffer
	for i := range frames {
		for _, ch := range channels {
			binary.Write(&payload, binary.LittleEndian, math.Float32bits(float32(ch[i])))
		}
	}

	return wavFile(wavFormatIEEEFloat, 32, sampleRate, len(channels), payload.Bytes())
}

func frameCount(channels [][]float64) int {
	if len(channels) == 0 {
		return 0
	}

	frames := len(channels[0])
	for _, ch := range channels {
		if len(ch) != frames {
			panic("testutil: channel length mismatch")
		}
	}

	return frames
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func wavFile(format, bits, sampleRate, channels int, payload []byte) []byte {
	blockAlign := channels * bits / 8
	byteRate := sampleRate * blockAlign

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(36+len(payload)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(format))
	binary.Write(&b, binary.LittleEndian, uint16(channels))
	binary.Write(&b, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&b, binary.LittleEndian, uint32(byteRate))
	binary.Write(&b, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&b, binary.LittleEndian, uint16(bits))
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(len(payload)))
	b.Write(payload)

	return b.Bytes()
}
