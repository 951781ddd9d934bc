package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexSixDigits(t *testing.T) {
	c, err := ParseHex("#00AEEF")
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.R)
	assert.InDelta(t, 174.0/255.0, c.G, 1e-9)
	assert.InDelta(t, 239.0/255.0, c.B, 1e-9)
	assert.Equal(t, 1.0, c.A)
}

func TestParseHexBounds(t *testing.T) {
	black, err := ParseHex("#000000")
	require.NoError(t, err)
	assert.Equal(t, RGBA{R: 0, G: 0, B: 0, A: 1}, black)

	white, err := ParseHex("#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, RGBA{R: 1, G: 1, B: 1, A: 1}, white)
}

func TestParseHexEightDigits(t *testing.T) {
	c, err := ParseHex("#FF555580")
	require.NoError(t, err)

	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 85.0/255.0, c.G, 1e-9)
	assert.InDelta(t, 85.0/255.0, c.B, 1e-9)
	assert.InDelta(t, 128.0/255.0, c.A, 1e-9)
}

func TestParseHexCaseAndPrefixInsensitive(t *testing.T) {
	upper, err := ParseHex("#00AEEF")
	require.NoError(t, err)
	lower, err := ParseHex("00aeef")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
}

func TestParseHexMalformed(t *testing.T) {
	for _, spec := range []string{"", "#ABC", "#ZZZZZZ", "#0A0A0F0", "#0A0A0F0A0", "not a color"} {
		c, err := ParseHex(spec)
		require.Error(t, err, "spec %q", spec)

		var malformed *MalformedColorSpecError
		require.ErrorAs(t, err, &malformed, "spec %q", spec)
		assert.Equal(t, spec, malformed.Spec)

		// The documented fallback: opaque black.
		assert.Equal(t, Fallback, c, "spec %q", spec)
	}
}

func TestMustHexPanicsOnMalformed(t *testing.T) {
	assert.NotPanics(t, func() { MustHex("#0A0A0F") })
	assert.Panics(t, func() { MustHex("#nope") })
}

func TestHexRoundTrip(t *testing.T) {
	for _, spec := range []string{"#00AEEF", "#0A0A0F", "#FFFFFF", "#000000"} {
		c, err := ParseHex(spec)
		require.NoError(t, err)
		assert.Equal(t, spec, c.Hex())
	}

	translucent, err := ParseHex("#FF555580")
	require.NoError(t, err)
	assert.Equal(t, "#FF555580", translucent.Hex())
}

func TestOverIdentityAndExtremes(t *testing.T) {
	bg := MustHex("#050507")
	accent := MustHex("#00AEEF")

	// Full opacity over anything is the color itself.
	full := accent.Over(bg, 1)
	assert.InDelta(t, accent.R, full.R, 1e-12)
	assert.InDelta(t, accent.G, full.G, 1e-12)
	assert.InDelta(t, accent.B, full.B, 1e-12)
	assert.Equal(t, 1.0, full.A)

	// Zero opacity disappears into the background.
	got := accent.Over(bg, 0)
	assert.InDelta(t, bg.R, got.R, 1e-9)
	assert.InDelta(t, bg.G, got.G, 1e-9)
	assert.InDelta(t, bg.B, got.B, 1e-9)
	assert.Equal(t, 1.0, got.A)
}

func TestOverMatchesSourceOverFormula(t *testing.T) {
	bg := MustHex("#050507")
	white := RGBA{R: 1, G: 1, B: 1, A: 1}

	const opacity = 0.08
	got := white.Over(bg, opacity)

	assert.InDelta(t, 1*opacity+bg.R*(1-opacity), got.R, 1e-9)
	assert.InDelta(t, 1*opacity+bg.G*(1-opacity), got.G, 1e-9)
	assert.InDelta(t, 1*opacity+bg.B*(1-opacity), got.B, 1e-9)
}

func TestOverStacksEntryAlphaWithOpacity(t *testing.T) {
	bg := RGBA{A: 1}
	half := RGBA{R: 1, G: 1, B: 1, A: 0.5}

	// Entry alpha 0.5 at opacity 0.5 composites like 0.25.
	got := half.Over(bg, 0.5)
	assert.InDelta(t, 0.25, got.R, 1e-9)
}

func TestColorInterfacePremultiplies(t *testing.T) {
	c := RGBA{R: 1, G: 0, B: 0, A: 0.5}
	r, g, b, a := c.RGBA()

	assert.Equal(t, uint32(0x8000), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0x8000), a)
}

func TestMalformedErrorMessageNamesSpec(t *testing.T) {
	_, err := ParseHex("#ZZZZZZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#ZZZZZZ")
	assert.True(t, errors.As(err, new(*MalformedColorSpecError)))
}
