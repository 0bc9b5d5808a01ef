package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/renato0307/gymtimer/internal/domain"
)

// Envelope timings and gains of the interval beep
const (
	SampleRate   = 44100
	ToneAttack   = 50 * time.Millisecond
	ToneRelease  = 600 * time.Millisecond
	ToneDuration = 650 * time.Millisecond

	startGain = 0.002
	floorGain = 0.001
)

// SynthesizeTone renders tone as a mono 16-bit PCM WAV file.
// The gain ramps exponentially from near silence to tone.Volume over
// ToneAttack, decays exponentially to floor by ToneRelease and holds there
// until ToneDuration.
func SynthesizeTone(tone domain.Tone) ([]byte, error) {
	if tone.FrequencyHz <= 0 || tone.FrequencyHz >= SampleRate/2 {
		return nil, fmt.Errorf("tone frequency %.1f Hz out of range", tone.FrequencyHz)
	}
	if tone.Volume <= floorGain || tone.Volume > 1 {
		return nil, fmt.Errorf("tone volume %.3f out of range", tone.Volume)
	}

	numSamples := int(ToneDuration.Seconds() * SampleRate)
	samples := make([]int16, numSamples)
	for i := range samples {
		t := float64(i) / SampleRate
		v := envelope(t, tone.Volume) * math.Sin(2*math.Pi*tone.FrequencyHz*t)
		samples[i] = int16(v * math.MaxInt16)
	}

	return encodeWAV(samples)
}

// envelope returns the gain at t seconds
func envelope(t, peak float64) float64 {
	attack := ToneAttack.Seconds()
	release := ToneRelease.Seconds()

	switch {
	case t < attack:
		return startGain * math.Pow(peak/startGain, t/attack)
	case t < release:
		return peak * math.Pow(floorGain/peak, (t-attack)/(release-attack))
	default:
		return floorGain
	}
}

// encodeWAV wraps samples in a RIFF/WAVE container
func encodeWAV(samples []int16) ([]byte, error) {
	const (
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)
	dataSize := uint32(len(samples) * blockAlign)

	header := struct {
		ChunkID       [4]byte
		ChunkSize     uint32
		Format        [4]byte
		Subchunk1ID   [4]byte
		Subchunk1Size uint32
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
		Subchunk2ID   [4]byte
		Subchunk2Size uint32
	}{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   channels,
		SampleRate:    SampleRate,
		ByteRate:      SampleRate * blockAlign,
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	var buf bytes.Buffer
	buf.Grow(44 + int(dataSize))
	if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("failed to write wav header: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("failed to write wav samples: %w", err)
	}
	return buf.Bytes(), nil
}
