package sfxforge

// Built-in asset library: per-theme UI cues and alarm sounds. Frequencies
// are standard note pitches where melodic (C5=523.25, E5=659.25, G5=783.99,
// A5=880).

// BuiltinCatalog returns a fresh copy of the built-in sound library. Each
// run owns its own catalog.
func BuiltinCatalog() *Catalog {
	c := NewCatalog()
	addNatureTheme(c)
	addCyberpunkTheme(c)
	addScifiTheme(c)
	addLofiTheme(c)
	addRetroTheme(c)
	return c
}

// nature: soft sine plucks and inharmonic bell chimes.
func addNatureTheme(c *Catalog) {
	click := GeneratorSpec{
		Duration: 0.08,
		Components: []Component{
			{Wave: WaveSine, Freq: 800, Weight: 0.2},
			{Wave: WaveSine, Freq: 1200, Weight: 0.1},
		},
		Envelope: Envelope{DecayRate: 40},
	}
	c.mustAdd("nature", "ui/click.wav", click)
	c.mustAdd("nature", "ui/hover.wav", WithWeightScale(WithDuration(click, 0.05), 0.6))

	c.mustAdd("nature", "ui/success.wav", GeneratorSpec{
		Duration: 0.5,
		Components: []Component{
			{Wave: WaveSine, Freq: 523.25, Weight: 0.25, Decay: 8, Harmonics: BellHarmonics},
			{Wave: WaveSine, Freq: 783.99, Weight: 0.2, Onset: 0.12, Decay: 8, Harmonics: BellHarmonics},
		},
		Envelope: Envelope{Release: 0.08},
	})
	c.mustAdd("nature", "ui/error.wav", GeneratorSpec{
		Duration: 0.25,
		Components: []Component{
			{Wave: WaveSine, Freq: 330, Weight: 0.3},
			{Wave: WaveSine, Freq: 247, Weight: 0.2, Onset: 0.1},
		},
		Envelope: Envelope{DecayRate: 12},
	})
	c.mustAdd("nature", "ui/notify.wav", GeneratorSpec{
		Duration: 0.6,
		Components: []Component{
			{Wave: WaveSine, Freq: 659.25, Weight: 0.22, Decay: 6, Harmonics: BellHarmonics},
			{Wave: WaveSine, Freq: 523.25, Weight: 0.18, Onset: 0.18, Decay: 6, Harmonics: BellHarmonics},
		},
		Envelope: Envelope{Release: 0.1},
	})
	c.mustAdd("nature", "alarm/gentle.wav", GeneratorSpec{
		Duration: 1.2,
		Components: []Component{
			{Wave: WaveSine, Freq: 880, Weight: 0.25, Decay: 3, Harmonics: BellHarmonics},
			{Wave: WaveSine, Freq: 880, Weight: 0.25, Onset: 0.4, Decay: 3, Harmonics: BellHarmonics},
			{Wave: WaveSine, Freq: 880, Weight: 0.25, Onset: 0.8, Decay: 3, Harmonics: BellHarmonics},
		},
		Envelope: Envelope{Release: 0.15},
	})
	c.mustAdd("nature", "alarm/urgent.wav", GeneratorSpec{
		Duration: 1.0,
		Components: []Component{
			{Wave: WaveSine, Freq: 988, Weight: 0.35, VibratoDepth: 0.02, VibratoRate: 9},
		},
		Effects:  []Effect{Tremolo(0.5, 7)},
		Envelope: Envelope{Attack: 0.02, Release: 0.1},
	})
}

// cyberpunk: harsh bit-crushed squares.
func addCyberpunkTheme(c *Catalog) {
	click := GeneratorSpec{
		Duration: 0.06,
		Components: []Component{
			{Wave: WaveSquare, Freq: 1100, Weight: 0.18},
		},
		Effects:  []Effect{BitCrush(8)},
		Envelope: Envelope{DecayRate: 55},
	}
	c.mustAdd("cyberpunk", "ui/click.wav", click)
	c.mustAdd("cyberpunk", "ui/hover.wav", WithDuration(click, 0.04))

	c.mustAdd("cyberpunk", "ui/success.wav", GeneratorSpec{
		Duration: 0.35,
		Components: []Component{
			{Wave: WaveSquare, Freq: 523.25, Weight: 0.15, Decay: 14},
			{Wave: WaveSquare, Freq: 659.25, Weight: 0.15, Onset: 0.08, Decay: 14},
			{Wave: WaveSquare, Freq: 880, Weight: 0.15, Onset: 0.16, Decay: 14},
		},
		Effects: []Effect{BitCrush(16)},
	})
	c.mustAdd("cyberpunk", "ui/error.wav", GeneratorSpec{
		Duration: 0.3,
		Components: []Component{
			{Wave: WaveSquare, Freq: 220, Weight: 0.25, Sweep: -200},
		},
		Effects:  []Effect{BitCrush(8), NoiseMix(0.05)},
		Envelope: Envelope{DecayRate: 10},
	})
	c.mustAdd("cyberpunk", "ui/notify.wav", GeneratorSpec{
		Duration: 0.4,
		Components: []Component{
			{Wave: WaveSquare, Freq: 1318.5, Weight: 0.12, Decay: 18},
			{Wave: WaveSquare, Freq: 988, Weight: 0.12, Onset: 0.12, Decay: 18},
		},
		Effects: []Effect{BitCrush(32)},
	})
	c.mustAdd("cyberpunk", "alarm/gentle.wav", GeneratorSpec{
		Duration: 1.0,
		Components: []Component{
			{Wave: WaveSquare, Freq: 740, Weight: 0.18},
		},
		Effects:  []Effect{Tremolo(0.8, 4), BitCrush(16)},
		Envelope: Envelope{Attack: 0.05, Release: 0.2},
	})
	c.mustAdd("cyberpunk", "alarm/urgent.wav", GeneratorSpec{
		Duration: 1.2,
		Components: []Component{
			{Wave: WaveSquare, Freq: 880, Weight: 0.22},
			{Wave: WaveSquare, Freq: 1244.5, Weight: 0.14},
		},
		Effects:  []Effect{Tremolo(1.0, 10), BitCrush(8), NoiseMix(0.04)},
		Envelope: Envelope{Release: 0.1},
	})
}

// scifi: swept and vibrato-modulated laser timbres.
func addScifiTheme(c *Catalog) {
	click := GeneratorSpec{
		Duration: 0.1,
		Components: []Component{
			{Wave: WaveSine, Freq: 1800, Weight: 0.2, Sweep: -9000},
		},
		Envelope: Envelope{DecayRate: 30},
	}
	c.mustAdd("scifi", "ui/click.wav", click)
	c.mustAdd("scifi", "ui/hover.wav", WithWeightScale(WithDuration(click, 0.06), 0.7))

	c.mustAdd("scifi", "ui/success.wav", GeneratorSpec{
		Duration: 0.45,
		Components: []Component{
			{Wave: WaveSine, Freq: 600, Weight: 0.25, Sweep: 1500},
		},
		Envelope: Envelope{Attack: 0.02, Release: 0.12},
	})
	c.mustAdd("scifi", "ui/error.wav", GeneratorSpec{
		Duration: 0.35,
		Components: []Component{
			{Wave: WaveSaw, Freq: 500, Weight: 0.25, Sweep: -900},
		},
		Effects:  []Effect{Saturation(1.6)},
		Envelope: Envelope{DecayRate: 9},
	})
	c.mustAdd("scifi", "ui/notify.wav", GeneratorSpec{
		Duration: 0.5,
		Components: []Component{
			{Wave: WaveSine, Freq: 950, Weight: 0.22, VibratoDepth: 0.04, VibratoRate: 14},
		},
		Envelope: Envelope{Attack: 0.03, DecayRate: 5},
	})
	c.mustAdd("scifi", "alarm/gentle.wav", GeneratorSpec{
		Duration: 1.4,
		Components: []Component{
			{Wave: WaveSine, Freq: 620, Weight: 0.3, VibratoDepth: 0.12, VibratoRate: 2.5},
		},
		Envelope: Envelope{Attack: 0.2, Release: 0.3},
	})
	c.mustAdd("scifi", "alarm/urgent.wav", GeneratorSpec{
		Duration: 1.2,
		Components: []Component{
			{Wave: WaveSaw, Freq: 700, Weight: 0.25, VibratoDepth: 0.25, VibratoRate: 6},
		},
		Effects:  []Effect{Saturation(2.0), Tremolo(0.4, 12)},
		Envelope: Envelope{Release: 0.1},
	})
}

// lofi: low-passed, tape-saturated plucks.
func addLofiTheme(c *Catalog) {
	click := GeneratorSpec{
		Duration: 0.09,
		Components: []Component{
			{Wave: WaveTriangle, Freq: 700, Weight: 0.3},
		},
		Effects:  []Effect{Saturation(1.4), LowPass(0.75)},
		Envelope: Envelope{DecayRate: 35},
	}
	c.mustAdd("lofi", "ui/click.wav", click)
	c.mustAdd("lofi", "ui/hover.wav", WithDuration(click, 0.05))

	c.mustAdd("lofi", "ui/success.wav", GeneratorSpec{
		Duration: 0.5,
		Components: []Component{
			{Wave: WaveTriangle, Freq: 392, Weight: 0.3, Decay: 7},
			{Wave: WaveTriangle, Freq: 523.25, Weight: 0.25, Onset: 0.13, Decay: 7},
		},
		Effects: []Effect{Saturation(1.3), NoiseMix(0.02), LowPass(0.7)},
	})
	c.mustAdd("lofi", "ui/error.wav", GeneratorSpec{
		Duration: 0.3,
		Components: []Component{
			{Wave: WaveTriangle, Freq: 262, Weight: 0.35},
			{Wave: WaveTriangle, Freq: 196, Weight: 0.25, Onset: 0.12},
		},
		Effects:  []Effect{Saturation(1.5), LowPass(0.7)},
		Envelope: Envelope{DecayRate: 10},
	})
	c.mustAdd("lofi", "ui/notify.wav", GeneratorSpec{
		Duration: 0.55,
		Components: []Component{
			{Wave: WaveSine, Freq: 587.33, Weight: 0.3, Decay: 6},
		},
		Effects: []Effect{Saturation(1.2), NoiseMix(0.015), LowPass(0.8)},
	})
	c.mustAdd("lofi", "alarm/gentle.wav", GeneratorSpec{
		Duration: 1.3,
		Components: []Component{
			{Wave: WaveSine, Freq: 440, Weight: 0.3, Decay: 2.5},
			{Wave: WaveSine, Freq: 440, Weight: 0.3, Onset: 0.5, Decay: 2.5},
		},
		Effects:  []Effect{Saturation(1.3), LowPass(0.7)},
		Envelope: Envelope{Release: 0.2},
	})
	c.mustAdd("lofi", "alarm/urgent.wav", GeneratorSpec{
		Duration: 1.1,
		Components: []Component{
			{Wave: WaveTriangle, Freq: 660, Weight: 0.35},
		},
		Effects:  []Effect{Tremolo(0.6, 8), Saturation(1.8), LowPass(0.8)},
		Envelope: Envelope{Release: 0.1},
	})
}

// retro: saw-wave arpeggios in the 8-bit style.
func addRetroTheme(c *Catalog) {
	click := GeneratorSpec{
		Duration: 0.05,
		Components: []Component{
			{Wave: WaveSaw, Freq: 1000, Weight: 0.3},
		},
		Effects:  []Effect{BitCrush(16)},
		Envelope: Envelope{DecayRate: 60},
	}
	c.mustAdd("retro", "ui/click.wav", click)
	c.mustAdd("retro", "ui/hover.wav", WithFreqScale(WithDuration(click, 0.04), 1.25))

	c.mustAdd("retro", "ui/success.wav", GeneratorSpec{
		Duration: 0.4,
		Components: []Component{
			{Wave: WaveSaw, Freq: 523.25, Weight: 0.2, Decay: 16},
			{Wave: WaveSaw, Freq: 659.25, Weight: 0.2, Onset: 0.07, Decay: 16},
			{Wave: WaveSaw, Freq: 783.99, Weight: 0.2, Onset: 0.14, Decay: 16},
			{Wave: WaveSaw, Freq: 1046.5, Weight: 0.2, Onset: 0.21, Decay: 12},
		},
		Effects: []Effect{BitCrush(32)},
	})
	c.mustAdd("retro", "ui/error.wav", GeneratorSpec{
		Duration: 0.35,
		Components: []Component{
			{Wave: WaveSaw, Freq: 392, Weight: 0.25, Decay: 12},
			{Wave: WaveSaw, Freq: 311.13, Weight: 0.25, Onset: 0.1, Decay: 12},
			{Wave: WaveSaw, Freq: 233.08, Weight: 0.25, Onset: 0.2, Decay: 10},
		},
		Effects: []Effect{BitCrush(16)},
	})
	c.mustAdd("retro", "ui/notify.wav", GeneratorSpec{
		Duration: 0.3,
		Components: []Component{
			{Wave: WaveSaw, Freq: 880, Weight: 0.22, Decay: 18},
			{Wave: WaveSaw, Freq: 1108.7, Weight: 0.22, Onset: 0.09, Decay: 14},
		},
		Effects: []Effect{BitCrush(32)},
	})
	c.mustAdd("retro", "alarm/gentle.wav", GeneratorSpec{
		Duration: 1.0,
		Components: []Component{
			{Wave: WaveSaw, Freq: 587.33, Weight: 0.2, Decay: 4},
			{Wave: WaveSaw, Freq: 587.33, Weight: 0.2, Onset: 0.33, Decay: 4},
			{Wave: WaveSaw, Freq: 587.33, Weight: 0.2, Onset: 0.66, Decay: 4},
		},
		Effects: []Effect{BitCrush(32)},
	})
	c.mustAdd("retro", "alarm/urgent.wav", GeneratorSpec{
		Duration: 1.2,
		Components: []Component{
			{Wave: WaveSaw, Freq: 784, Weight: 0.3},
		},
		Effects:  []Effect{Tremolo(1.0, 9), BitCrush(8)},
		Envelope: Envelope{Release: 0.08},
	})
}
