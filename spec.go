package sfxforge

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec marks a generator spec that fails validation. It is fatal
// to its catalog entry only.
var ErrInvalidSpec = errors.New("invalid generator spec")

// Component is one frequency component of a sound. The rendered value at
// absolute time t is the waveform (or its harmonic stack) evaluated at the
// component frequency, scaled by Weight, delayed by Onset and shaped by the
// component's own exponential decay.
type Component struct {
	Wave         Waveform
	Freq         float64    // base frequency in Hz
	Sweep        float64    // linear frequency sweep in Hz per second
	VibratoDepth float64    // relative LFO depth, 0 = none
	VibratoRate  float64    // LFO rate in Hz
	Weight       float64    // relative amplitude
	Onset        float64    // delay before the component starts, in seconds
	Decay        float64    // per-component decay rate from onset, 0 = none
	Harmonics    []Harmonic // additive stack; empty = bare fundamental
}

// freqAt returns the instantaneous frequency at absolute time t.
func (c Component) freqAt(t float64) float64 {
	f := c.Freq + c.Sweep*t
	if c.VibratoDepth != 0 {
		f *= 1 + c.VibratoDepth*calcSin(c.VibratoRate, t)
	}
	return f
}

// GeneratorSpec is the declarative description of one sound. Specs are
// static data authored in the catalog and never mutated at runtime.
type GeneratorSpec struct {
	Duration   float64 // seconds
	SampleRate int     // Hz; 0 selects DefaultSampleRate
	Components []Component
	Effects    []Effect // applied in order; buffer-level effects run last
	Envelope   Envelope
}

func (s GeneratorSpec) rate() int {
	if s.SampleRate == 0 {
		return DefaultSampleRate
	}
	return s.SampleRate
}

// Validate checks the spec before any buffer is allocated. All failures
// wrap ErrInvalidSpec.
func (s GeneratorSpec) Validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive (got %g)", ErrInvalidSpec, s.Duration)
	}
	if s.SampleRate < 0 {
		return fmt.Errorf("%w: sample rate must be positive (got %d)", ErrInvalidSpec, s.SampleRate)
	}
	if len(s.Components) == 0 {
		return fmt.Errorf("%w: at least one frequency component is required", ErrInvalidSpec)
	}
	for i, c := range s.Components {
		if !c.Wave.valid() {
			return fmt.Errorf("%w: component %d: unknown waveform %d", ErrInvalidSpec, i, int(c.Wave))
		}
		if c.Freq <= 0 {
			return fmt.Errorf("%w: component %d: frequency must be positive (got %g)", ErrInvalidSpec, i, c.Freq)
		}
		if c.Weight <= 0 {
			return fmt.Errorf("%w: component %d: weight must be positive (got %g)", ErrInvalidSpec, i, c.Weight)
		}
		if c.Onset < 0 {
			return fmt.Errorf("%w: component %d: onset must be non-negative (got %g)", ErrInvalidSpec, i, c.Onset)
		}
		if c.Decay < 0 {
			return fmt.Errorf("%w: component %d: decay must be non-negative (got %g)", ErrInvalidSpec, i, c.Decay)
		}
		for j, h := range c.Harmonics {
			if h.Mult <= 0 || h.Weight <= 0 {
				return fmt.Errorf("%w: component %d: harmonic %d: mult and weight must be positive", ErrInvalidSpec, i, j)
			}
		}
	}
	for i, e := range s.Effects {
		if err := e.validate(); err != nil {
			return fmt.Errorf("%w: effect %d: %v", ErrInvalidSpec, i, err)
		}
	}
	if s.Envelope.DecayRate < 0 || s.Envelope.Attack < 0 || s.Envelope.Release < 0 {
		return fmt.Errorf("%w: envelope parameters must be non-negative", ErrInvalidSpec)
	}
	return nil
}

// clone returns a deep copy so derivation helpers never alias the base
// spec's slices.
func (s GeneratorSpec) clone() GeneratorSpec {
	out := s
	out.Components = make([]Component, len(s.Components))
	copy(out.Components, s.Components)
	for i, c := range s.Components {
		if len(c.Harmonics) > 0 {
			out.Components[i].Harmonics = append([]Harmonic(nil), c.Harmonics...)
		}
	}
	if len(s.Effects) > 0 {
		out.Effects = append([]Effect(nil), s.Effects...)
	}
	return out
}

// WithDuration derives a variant of base with a different duration (the
// "same click, shorter" pattern used for hover variants).
func WithDuration(base GeneratorSpec, duration float64) GeneratorSpec {
	out := base.clone()
	out.Duration = duration
	return out
}

// WithFreqScale derives a variant with every component frequency scaled by
// k, preserving harmonic ratios.
func WithFreqScale(base GeneratorSpec, k float64) GeneratorSpec {
	out := base.clone()
	for i := range out.Components {
		out.Components[i].Freq *= k
		out.Components[i].Sweep *= k
	}
	return out
}

// WithWeightScale derives a quieter or louder variant.
func WithWeightScale(base GeneratorSpec, k float64) GeneratorSpec {
	out := base.clone()
	for i := range out.Components {
		out.Components[i].Weight *= k
	}
	return out
}
