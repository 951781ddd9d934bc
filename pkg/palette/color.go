// Package palette defines the design system's color data and the hex
// color parser used to resolve it.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with red, green, blue and alpha channels normalized
// to [0, 1]. It implements color.Color so lipgloss styles can consume
// it directly.
type RGBA struct {
	R, G, B, A float64
}

// Fallback is the color substituted for entries whose spec cannot be
// parsed: opaque black. A bad entry must never take down more than its
// own swatch, so callers that cannot propagate an error render this.
var Fallback = RGBA{A: 1}

// MalformedColorSpecError reports a hex color spec that cannot be
// parsed. It is the only error kind the palette produces.
type MalformedColorSpecError struct {
	Spec   string
	Reason string
}

func (e *MalformedColorSpecError) Error() string {
	return fmt.Sprintf("malformed color spec %q: %s", e.Spec, e.Reason)
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" into an RGBA. Hex digits
// are case-insensitive and the leading '#' is optional. Each 2-digit
// group maps to value/255; the 6-digit form implies alpha 1.0. On
// malformed input it returns Fallback alongside the error.
func ParseHex(spec string) (RGBA, error) {
	s := strings.TrimPrefix(spec, "#")
	if len(s) != 6 && len(s) != 8 {
		return Fallback, &MalformedColorSpecError{
			Spec:   spec,
			Reason: fmt.Sprintf("want 6 or 8 hex digits, got %d", len(s)),
		}
	}

	var ch [4]float64
	ch[3] = 1
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return Fallback, &MalformedColorSpecError{
				Spec:   spec,
				Reason: "invalid hex digit in " + strconv.Quote(s[2*i:2*i+2]),
			}
		}
		ch[i] = float64(v) / 255.0
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// MustHex is ParseHex for trusted compile-time constants; it panics on
// malformed input. Authored palette and theme data only.
func MustHex(spec string) RGBA {
	c, err := ParseHex(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#RRGGBB", or "#RRGGBBAA" when the alpha
// channel is below 1.
func (c RGBA) Hex() string {
	if c.A < 1 {
		return fmt.Sprintf("#%02X%02X%02X%02X", channelByte(c.R), channelByte(c.G), channelByte(c.B), channelByte(c.A))
	}
	return fmt.Sprintf("#%02X%02X%02X", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// Over composites the color against an opaque background with an
// additional opacity multiplier on top of the color's own alpha.
// Terminal cells carry no alpha channel, so every translucent entry is
// resolved to the opaque color it would produce over the backdrop.
func (c RGBA) Over(bg RGBA, opacity float64) RGBA {
	a := clamp01(c.A * clamp01(opacity))
	blended := colorful.Color{R: bg.R, G: bg.G, B: bg.B}.
		BlendRgb(colorful.Color{R: c.R, G: c.G, B: c.B}, a)
	return RGBA{R: blended.R, G: blended.G, B: blended.B, A: 1}
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A)*0xffff + 0.5)
	g = uint32(clamp01(c.G*c.A)*0xffff + 0.5)
	b = uint32(clamp01(c.B*c.A)*0xffff + 0.5)
	a = uint32(clamp01(c.A)*0xffff + 0.5)
	return r, g, b, a
}

func channelByte(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
