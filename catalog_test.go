package sfxforge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() GeneratorSpec {
	return GeneratorSpec{
		Duration:   0.1,
		Components: []Component{{Wave: WaveSine, Freq: 440, Weight: 0.5}},
	}
}

func TestCatalogAdd(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Add("nature", "ui/click.wav", testSpec()))
	require.NoError(t, c.Add("nature", "ui/hover.wav", testSpec()))
	require.NoError(t, c.Add("retro", "ui/click.wav", testSpec()))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"nature", "retro"}, c.Themes())
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Add("nature", "ui/click.wav", testSpec()))
	err := c.Add("nature", "ui/click.wav", testSpec())
	require.ErrorIs(t, err, ErrDuplicateEntry)
	assert.Equal(t, 1, c.Len())

	// Paths are cleaned before the uniqueness check.
	err = c.Add("nature", "ui//click.wav", testSpec())
	require.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestCatalogRejectsBadPaths(t *testing.T) {
	c := NewCatalog()
	assert.Error(t, c.Add("", "ui/click.wav", testSpec()))
	assert.Error(t, c.Add("nature", "", testSpec()))
	assert.Error(t, c.Add("nature", "../escape.wav", testSpec()))
	assert.Error(t, c.Add("nature", "/abs/path.wav", testSpec()))
	assert.Equal(t, 0, c.Len())
}

func TestCatalogFilter(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Add("nature", "ui/click.wav", testSpec()))
	require.NoError(t, c.Add("retro", "ui/click.wav", testSpec()))
	require.NoError(t, c.Add("lofi", "ui/click.wav", testSpec()))

	f := c.Filter("retro", "lofi")
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"retro", "lofi"}, f.Themes())

	// Empty filter keeps everything.
	assert.Equal(t, 3, c.Filter().Len())
}

func TestBuiltinCatalogIsValid(t *testing.T) {
	c := BuiltinCatalog()
	require.GreaterOrEqual(t, c.Len(), 35)
	assert.ElementsMatch(t, []string{"nature", "cyberpunk", "scifi", "lofi", "retro"}, c.Themes())

	for _, e := range c.Entries() {
		assert.NoError(t, e.Spec.Validate(), "entry %s", e.Key)
	}

	// Each theme carries the full role set.
	roles := []string{
		"ui/click.wav", "ui/hover.wav", "ui/success.wav", "ui/error.wav",
		"ui/notify.wav", "alarm/gentle.wav", "alarm/urgent.wav",
	}
	byKey := make(map[CatalogKey]struct{}, c.Len())
	for _, e := range c.Entries() {
		byKey[e.Key] = struct{}{}
	}
	for _, theme := range c.Themes() {
		for _, role := range roles {
			_, ok := byKey[CatalogKey{Theme: theme, Path: role}]
			assert.True(t, ok, "%s missing %s", theme, role)
		}
	}
}

func TestBuiltinCatalogReturnsFreshCopies(t *testing.T) {
	a := BuiltinCatalog()
	b := BuiltinCatalog()
	require.Equal(t, a.Len(), b.Len())
	assert.NotSame(t, &a.entries[0], &b.entries[0])
}

func TestDerivationHelpers(t *testing.T) {
	base := GeneratorSpec{
		Duration: 0.2,
		Components: []Component{
			{Wave: WaveSine, Freq: 440, Weight: 0.5, Harmonics: []Harmonic{{Mult: 2, Weight: 0.5}}},
		},
		Effects: []Effect{BitCrush(8)},
	}

	shorter := WithDuration(base, 0.1)
	assert.Equal(t, 0.1, shorter.Duration)
	assert.Equal(t, 0.2, base.Duration)

	scaled := WithFreqScale(base, 2)
	assert.Equal(t, 880.0, scaled.Components[0].Freq)
	assert.Equal(t, 440.0, base.Components[0].Freq)

	quiet := WithWeightScale(base, 0.5)
	assert.Equal(t, 0.25, quiet.Components[0].Weight)
	assert.Equal(t, 0.5, base.Components[0].Weight)

	// Derivations never alias the base spec's slices.
	scaled.Components[0].Harmonics[0].Mult = 99
	assert.Equal(t, 2.0, base.Components[0].Harmonics[0].Mult)
	shorter.Effects[0] = LowPass(0.7)
	assert.Equal(t, EffectBitCrush, base.Effects[0].Kind)
}
