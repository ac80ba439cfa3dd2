package sfxforge

import "fmt"

// Smp is a single audio sample. Nominal range is [-1,1]; intermediate
// values may exceed it until the encoder clamps.
type Smp = float64

// DefaultSampleRate is the rate used by every catalog entry.
const DefaultSampleRate = 44100

// SampleBuffer is a finished mono rendering: append-only during synthesis,
// immutable afterwards.
type SampleBuffer struct {
	rate    int
	samples []Smp
}

func (b *SampleBuffer) String() string {
	return fmt.Sprintf("SampleBuffer(rate=%d nframes=%d)", b.rate, len(b.samples))
}

// Rate returns the sample rate in Hz.
func (b *SampleBuffer) Rate() int { return b.rate }

// Len returns the number of frames.
func (b *SampleBuffer) Len() int { return len(b.samples) }

// At returns the sample at frame i.
func (b *SampleBuffer) At(i int) Smp { return b.samples[i] }

// Samples exposes the raw sample slice. Callers must not mutate it.
func (b *SampleBuffer) Samples() []Smp { return b.samples }

func makeSampleBuffer(rate, nframes int) *SampleBuffer {
	return &SampleBuffer{rate: rate, samples: make([]Smp, nframes)}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
