package sfxforge

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWavHeaderExactness(t *testing.T) {
	const n = 1000
	buf := makeSampleBuffer(44100, n)
	data, err := EncodeWav(buf)
	require.NoError(t, err)
	require.Equal(t, 44+2*n, len(data))

	le := binary.LittleEndian
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, uint32(36+2*n), le.Uint32(data[4:8]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))
	assert.Equal(t, uint32(16), le.Uint32(data[16:20]))
	assert.Equal(t, uint16(1), le.Uint16(data[20:22])) // PCM
	assert.Equal(t, uint16(1), le.Uint16(data[22:24])) // mono
	assert.Equal(t, uint32(44100), le.Uint32(data[24:28]))
	assert.Equal(t, uint32(44100*2), le.Uint32(data[28:32])) // byte rate
	assert.Equal(t, uint16(2), le.Uint16(data[32:34]))       // block align
	assert.Equal(t, uint16(16), le.Uint16(data[34:36]))
	assert.Equal(t, "data", string(data[36:40]))
	assert.Equal(t, uint32(2*n), le.Uint32(data[40:44]))
}

func TestEncodeWavClampBeforeQuantize(t *testing.T) {
	buf := &SampleBuffer{rate: 44100, samples: []Smp{1.5, -2.0, 0.0, 1.0, -1.0}}
	data, err := EncodeWav(buf)
	require.NoError(t, err)

	pcm := func(i int) int16 {
		return int16(binary.LittleEndian.Uint16(data[44+2*i:]))
	}
	assert.Equal(t, int16(32767), pcm(0))  // clamped, never wrapped
	assert.Equal(t, int16(-32767), pcm(1)) // clamped, never wrapped
	assert.Equal(t, int16(0), pcm(2))
	assert.Equal(t, int16(32767), pcm(3))
	assert.Equal(t, int16(-32767), pcm(4))
}

func TestEncodeWavQuantization(t *testing.T) {
	buf := &SampleBuffer{rate: 44100, samples: []Smp{0.5, -0.5, 0.25}}
	data, err := EncodeWav(buf)
	require.NoError(t, err)

	le := binary.LittleEndian
	assert.Equal(t, int16(math.Round(0.5*32767)), int16(le.Uint16(data[44:])))
	assert.Equal(t, int16(math.Round(-0.5*32767)), int16(le.Uint16(data[46:])))
	assert.Equal(t, int16(math.Round(0.25*32767)), int16(le.Uint16(data[48:])))
}

func TestEncodeWavEmptyBuffer(t *testing.T) {
	data, err := EncodeWav(makeSampleBuffer(44100, 0))
	require.NoError(t, err)
	assert.Equal(t, 44, len(data))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[40:44]))
}

// Round-trip through an independent decoder proves the hand-rolled header
// is a valid canonical container.
func TestEncodeWavDecodesWithGoAudio(t *testing.T) {
	spec := GeneratorSpec{
		Duration:   0.05,
		Components: []Component{{Wave: WaveSine, Freq: 440, Weight: 0.5}},
	}
	buf, err := GenerateSamples(context.Background(), spec, nil)
	require.NoError(t, err)
	data, err := EncodeWav(buf)
	require.NoError(t, err)

	d := wav.NewDecoder(bytes.NewReader(data))
	require.True(t, d.IsValidFile())

	pcm, err := d.FullPCMBuffer()
	require.NoError(t, err)
	require.NotNil(t, pcm)
	require.NotNil(t, pcm.Format)
	assert.Equal(t, *audio.FormatMono44100, *pcm.Format)
	assert.Equal(t, 16, pcm.SourceBitDepth)
	require.Equal(t, buf.Len(), len(pcm.Data))

	for i, want := range buf.Samples() {
		q := int(math.Round(clamp(want, -1, 1) * 32767))
		require.Equal(t, q, pcm.Data[i], "sample %d", i)
	}
}
