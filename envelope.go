package sfxforge

import "math"

// Envelope shapes the amplitude of a rendered sound. DecayRate selects an
// exponential decay exp(-t*rate), the default for pluck/click style entries.
// Attack/Release select linear ramps at the ends of the buffer instead; the
// two styles combine multiplicatively when both are set.
type Envelope struct {
	DecayRate float64 // exponential decay rate, 0 = none
	Attack    float64 // linear fade-in duration in seconds, 0 = none
	Release   float64 // linear fade-out duration in seconds, 0 = none
}

// gainAt returns the envelope multiplier at absolute time t for a sound of
// the given total duration.
func (e Envelope) gainAt(t, duration float64) float64 {
	g := 1.0
	if e.DecayRate > 0 {
		g = math.Exp(-t * e.DecayRate)
	}
	if e.Attack > 0 && t < e.Attack {
		g *= t / e.Attack
	}
	if e.Release > 0 && t > duration-e.Release {
		rem := (duration - t) / e.Release
		if rem < 0 {
			rem = 0
		}
		g *= rem
	}
	return g
}

// componentGain applies a component's own exponential decay measured from
// its onset. A zero rate leaves shaping to the spec envelope.
func componentGain(decayRate, tFromOnset float64) float64 {
	if decayRate <= 0 {
		return 1.0
	}
	return math.Exp(-tFromOnset * decayRate)
}
