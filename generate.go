package sfxforge

import (
	"context"
)

// ctxCheckInterval is how often the render loop polls for cancellation.
// Rendering is CPU-bound, so the per-entry timeout can only take effect at
// these checkpoints.
const ctxCheckInterval = 4096

// GenerateSamples renders a spec into a fresh sample buffer.
//
// The buffer length is the truncated product duration*rate: the fractional
// remainder is dropped, never rounded up past the requested duration. Pass 1
// fills the buffer with pure point-wise evaluation (component sum, envelope,
// point-wise effect chain); pass 2 runs the buffer-level effects, the only
// ones that need access to prior output samples.
//
// noise may be nil when the effect chain contains no noise step; a chain
// with noise then falls back to an unseeded source.
func GenerateSamples(ctx context.Context, spec GeneratorSpec, noise NoiseSource) (*SampleBuffer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	rate := spec.rate()
	nframes := int(spec.Duration * float64(rate))
	buf := makeSampleBuffer(rate, nframes)

	pointFX := make([]Effect, 0, len(spec.Effects))
	bufferFX := make([]Effect, 0, 1)
	needNoise := false
	for _, e := range spec.Effects {
		if e.bufferLevel() {
			bufferFX = append(bufferFX, e)
		} else {
			pointFX = append(pointFX, e)
			if e.Kind == EffectNoise {
				needNoise = true
			}
		}
	}
	if needNoise && noise == nil {
		noise = NewUnseededNoise()
	}

	srate := float64(rate)
	for i := range buf.samples {
		if i%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		t := float64(i) / srate

		var raw Smp
		for _, c := range spec.Components {
			tk := t - c.Onset
			if tk < 0 {
				continue
			}
			v := evalStack(c.Wave, c.Harmonics, c.freqAt(tk), tk)
			raw += v * c.Weight * componentGain(c.Decay, tk)
		}

		raw *= spec.Envelope.gainAt(t, spec.Duration)
		for _, e := range pointFX {
			raw = e.applyPoint(raw, t, noise)
		}
		buf.samples[i] = raw
	}

	for _, e := range bufferFX {
		e.applyBuffer(buf.samples)
	}
	return buf, nil
}
