package sfxforge

import (
	"fmt"
	"math"
)

// Waveform selects one of the built-in oscillator shapes.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "saw"
	case WaveTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
}

func (w Waveform) valid() bool {
	return w >= WaveSine && w <= WaveTriangle
}

// All oscillators are pure functions of (frequency, absolute time). There is
// no phase accumulator: re-evaluating any sub-range reproduces identical
// values.

func calcSin(freq, t float64) Smp {
	return math.Sin(2 * math.Pi * freq * t)
}

func calcSquare(freq, t float64) Smp {
	s := math.Sin(2 * math.Pi * freq * t)
	if s > 0 {
		return 1.0
	}
	if s < 0 {
		return -1.0
	}
	return 0.0
}

func calcSaw(freq, t float64) Smp {
	p := math.Mod(freq*t, 1.0)
	if p < 0 {
		p += 1.0
	}
	return p - 0.5
}

func calcTriangle(freq, t float64) Smp {
	p := math.Mod(freq*t, 1.0)
	if p < 0 {
		p += 1.0
	}
	if p < 0.25 {
		return p * 4.0
	} else if p < 0.75 {
		return 1.0 - (p-0.25)*4.0
	}
	return -1.0 + (p-0.75)*4.0
}

// Evaluate returns the raw (unclamped) oscillator value at absolute time t.
func Evaluate(w Waveform, freq, t float64) Smp {
	switch w {
	case WaveSine:
		return calcSin(freq, t)
	case WaveSquare:
		return calcSquare(freq, t)
	case WaveSaw:
		return calcSaw(freq, t)
	case WaveTriangle:
		return calcTriangle(freq, t)
	}
	return 0
}

// Harmonic is one partial of an additive stack: the oscillator evaluated at
// Mult times the component frequency, scaled by Weight.
type Harmonic struct {
	Mult   float64
	Weight float64
}

// BellHarmonics is the stack used by the chime/bell entries: a strong
// fundamental with slightly inharmonic upper partials.
var BellHarmonics = []Harmonic{
	{Mult: 1.0, Weight: 1.0},
	{Mult: 2.0, Weight: 0.5},
	{Mult: 2.98, Weight: 0.25},
	{Mult: 4.2, Weight: 0.12},
}

// evalStack sums a harmonic stack at absolute time t. An empty stack is the
// bare fundamental.
func evalStack(w Waveform, harmonics []Harmonic, freq, t float64) Smp {
	if len(harmonics) == 0 {
		return Evaluate(w, freq, t)
	}
	var sum Smp
	for _, h := range harmonics {
		sum += Evaluate(w, freq*h.Mult, t) * h.Weight
	}
	return sum
}
