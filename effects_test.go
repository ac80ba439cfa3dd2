package sfxforge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTremolo(t *testing.T) {
	e := Tremolo(0.5, 2)
	// Peak of the 2 Hz LFO is at t=1/8.
	assert.InDelta(t, 0.4*1.5, e.applyPoint(0.4, 1.0/8, nil), 1e-12)
	// sin(0)=0 leaves the sample untouched.
	assert.InDelta(t, 0.4, e.applyPoint(0.4, 0, nil), 1e-12)
}

func TestBitCrush(t *testing.T) {
	e := BitCrush(4)
	assert.InDelta(t, 0.5, e.applyPoint(0.6, 0, nil), 1e-12)  // round(2.4)/4
	assert.InDelta(t, 0.75, e.applyPoint(0.7, 0, nil), 1e-12) // round(2.8)/4
	assert.InDelta(t, -0.5, e.applyPoint(-0.6, 0, nil), 1e-12)
	assert.InDelta(t, 1.0, e.applyPoint(0.9, 0, nil), 1e-12) // round(3.6)/4
	// Quantization can step past the nominal range; the clamp happens at
	// encode time, not here.
	assert.InDelta(t, 1.25, e.applyPoint(1.13, 0, nil), 1e-12) // round(4.52)/4
}

func TestSaturation(t *testing.T) {
	e := Saturation(2)
	assert.InDelta(t, math.Tanh(1.0), e.applyPoint(0.5, 0, nil), 1e-12)
	assert.InDelta(t, -math.Tanh(1.0), e.applyPoint(-0.5, 0, nil), 1e-12)
	// tanh output always stays inside (-1,1).
	assert.Less(t, math.Abs(e.applyPoint(100, 0, nil)), 1.0)
}

func TestNoiseMix(t *testing.T) {
	e := NoiseMix(0.2)
	noise := NewSeededNoise(42)
	for i := 0; i < 1000; i++ {
		got := e.applyPoint(0.1, 0, noise)
		// Uniform(-0.5,0.5) scaled by 0.2 stays within +/-0.1 of the input.
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 0.2)
	}

	// Seeded sources repeat exactly.
	a, b := NewSeededNoise(7), NewSeededNoise(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Sample(), b.Sample())
	}
}

func TestSeededNoiseDistribution(t *testing.T) {
	noise := NewSeededNoise(1)
	const n = 100000
	var sum float64
	for i := 0; i < n; i++ {
		v := noise.Sample()
		require.GreaterOrEqual(t, v, -0.5)
		require.Less(t, v, 0.5)
		sum += v
	}
	assert.InDelta(t, 0.0, sum/n, 0.01)
}

func TestLowPass(t *testing.T) {
	e := LowPass(0.75)
	samples := []Smp{1, 0, 0, 0}
	e.applyBuffer(samples)

	// y[i] = 0.75*x[i] + 0.25*y[i-1], y[-1] = 0
	assert.InDelta(t, 0.75, samples[0], 1e-12)
	assert.InDelta(t, 0.1875, samples[1], 1e-12)
	assert.InDelta(t, 0.046875, samples[2], 1e-12)
	assert.InDelta(t, 0.01171875, samples[3], 1e-12)
}

func TestLowPassIsBufferLevel(t *testing.T) {
	assert.True(t, LowPass(0.7).bufferLevel())
	assert.False(t, Tremolo(0.5, 2).bufferLevel())
	assert.False(t, BitCrush(8).bufferLevel())
}

func TestEffectValidation(t *testing.T) {
	assert.NoError(t, Tremolo(0.5, 4).validate())
	assert.NoError(t, BitCrush(8).validate())
	assert.NoError(t, LowPass(0.75).validate())
	assert.NoError(t, Saturation(1.5).validate())
	assert.NoError(t, NoiseMix(0.1).validate())

	assert.Error(t, BitCrush(0).validate())
	assert.Error(t, BitCrush(-4).validate())
	assert.Error(t, LowPass(0).validate())
	assert.Error(t, LowPass(1.5).validate())
	assert.Error(t, Saturation(0).validate())
	assert.Error(t, NoiseMix(-0.1).validate())
	assert.Error(t, Tremolo(-1, 4).validate())
	assert.Error(t, Effect{Kind: EffectKind(99)}.validate())
}
