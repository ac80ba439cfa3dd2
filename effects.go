package sfxforge

import (
	"fmt"
	"math"
)

// EffectKind names one of the built-in effects.
type EffectKind int

const (
	EffectTremolo EffectKind = iota
	EffectBitCrush
	EffectSaturation
	EffectNoise
	EffectLowPass
)

func (k EffectKind) String() string {
	switch k {
	case EffectTremolo:
		return "tremolo"
	case EffectBitCrush:
		return "bitcrush"
	case EffectSaturation:
		return "saturation"
	case EffectNoise:
		return "noise"
	case EffectLowPass:
		return "lowpass"
	default:
		return fmt.Sprintf("EffectKind(%d)", int(k))
	}
}

// Effect is one step of a spec's effect chain. It is plain data so catalogs
// stay serializable; which parameter fields are meaningful depends on Kind.
type Effect struct {
	Kind   EffectKind
	Depth  float64 // tremolo modulation depth
	Rate   float64 // tremolo modulation rate in Hz
	Levels int     // bit-crush quantization levels
	Drive  float64 // saturation drive
	Amount float64 // additive noise amount
	Alpha  float64 // one-pole low-pass coefficient in (0,1]
}

// Tremolo multiplies the running sample by (1 + depth*sin(2*pi*rate*t)).
func Tremolo(depth, rate float64) Effect {
	return Effect{Kind: EffectTremolo, Depth: depth, Rate: rate}
}

// BitCrush quantizes to round(s*levels)/levels. Small level counts give the
// stepped retro timbre; quantization may push values slightly outside
// [-1,1], so it runs before the encoder clamp.
func BitCrush(levels int) Effect {
	return Effect{Kind: EffectBitCrush, Levels: levels}
}

// Saturation applies tanh(s*drive) tape-style soft clipping.
func Saturation(drive float64) Effect {
	return Effect{Kind: EffectSaturation, Drive: drive}
}

// NoiseMix adds uniform(-0.5,0.5)*amount from the injected noise source.
func NoiseMix(amount float64) Effect {
	return Effect{Kind: EffectNoise, Amount: amount}
}

// LowPass is the one-pole smoother y[i] = alpha*x[i] + (1-alpha)*y[i-1]
// with y[-1] = 0. It needs the previous output sample, so it runs as a
// buffer-level second pass after the point-wise chain.
func LowPass(alpha float64) Effect {
	return Effect{Kind: EffectLowPass, Alpha: alpha}
}

// bufferLevel reports whether the effect must run over the whole buffer
// instead of per sample.
func (e Effect) bufferLevel() bool {
	return e.Kind == EffectLowPass
}

func (e Effect) validate() error {
	switch e.Kind {
	case EffectTremolo:
		if e.Depth < 0 || e.Rate < 0 {
			return fmt.Errorf("tremolo: depth and rate must be non-negative (depth=%g rate=%g)", e.Depth, e.Rate)
		}
	case EffectBitCrush:
		if e.Levels <= 0 {
			return fmt.Errorf("bitcrush: levels must be positive (got %d)", e.Levels)
		}
	case EffectSaturation:
		if e.Drive <= 0 {
			return fmt.Errorf("saturation: drive must be positive (got %g)", e.Drive)
		}
	case EffectNoise:
		if e.Amount < 0 {
			return fmt.Errorf("noise: amount must be non-negative (got %g)", e.Amount)
		}
	case EffectLowPass:
		if e.Alpha <= 0 || e.Alpha > 1 {
			return fmt.Errorf("lowpass: alpha must be in (0,1] (got %g)", e.Alpha)
		}
	default:
		return fmt.Errorf("unknown effect kind %d", int(e.Kind))
	}
	return nil
}

// applyPoint transforms a single sample at absolute time t.
func (e Effect) applyPoint(s Smp, t float64, noise NoiseSource) Smp {
	switch e.Kind {
	case EffectTremolo:
		return s * (1 + e.Depth*math.Sin(2*math.Pi*e.Rate*t))
	case EffectBitCrush:
		levels := float64(e.Levels)
		return math.Round(s*levels) / levels
	case EffectSaturation:
		return math.Tanh(s * e.Drive)
	case EffectNoise:
		return s + noise.Sample()*e.Amount
	}
	return s
}

// applyBuffer runs a buffer-level effect in place over the full rendering.
func (e Effect) applyBuffer(samples []Smp) {
	switch e.Kind {
	case EffectLowPass:
		prev := Smp(0)
		for i, x := range samples {
			prev = e.Alpha*x + (1-e.Alpha)*prev
			samples[i] = prev
		}
	}
}
