package sfxforge

import "time"

// NoiseSource yields uniform values in [-0.5, 0.5). It is the only source
// of non-determinism in the pipeline, which is why it is injected rather
// than hidden inside the effect chain.
type NoiseSource interface {
	Sample() float64
}

// xorshiftNoise is a xorshift32 PRNG. Seed 0 is mapped to state 1 to avoid
// lockup.
type xorshiftNoise struct {
	state uint32
}

// NewSeededNoise returns a deterministic noise source.
func NewSeededNoise(seed uint32) NoiseSource {
	if seed == 0 {
		seed = 1
	}
	return &xorshiftNoise{state: seed}
}

// NewUnseededNoise returns a time-seeded noise source for callers that do
// not need reproducible output.
func NewUnseededNoise() NoiseSource {
	return NewSeededNoise(uint32(time.Now().UnixNano()))
}

func (n *xorshiftNoise) Sample() float64 {
	n.state ^= n.state << 13
	n.state ^= n.state >> 17
	n.state ^= n.state << 5
	u := float64(n.state) / float64(^uint32(0))
	return u - 0.5
}
