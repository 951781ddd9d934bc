package palette

import (
	"fmt"
	"strconv"
)

// BaseColor is a named base color an Entry can reference instead of a
// hex spec. The glassmorphic tints are white at low opacity.
type BaseColor int

const (
	BaseNone BaseColor = iota
	BaseWhite
	BaseBlack
)

// String returns the descriptor used in swatch captions.
func (b BaseColor) String() string {
	switch b {
	case BaseWhite:
		return "white"
	case BaseBlack:
		return "black"
	default:
		return "none"
	}
}

func (b BaseColor) rgba() RGBA {
	switch b {
	case BaseWhite:
		return RGBA{R: 1, G: 1, B: 1, A: 1}
	default:
		return RGBA{A: 1}
	}
}

// Entry is one named color of the design system. The source is either
// a hex spec or a named base color, never both. Opacity is a
// compositing factor in [0, 1]; construct entries through Hex,
// HexAlpha or Tint so it defaults to 1 rather than the zero value.
// Entries are authored once at startup and never mutated.
type Entry struct {
	Name    string
	Spec    string    // hex spec, empty when Base is set
	Base    BaseColor // named base color, BaseNone when Spec is set
	Opacity float64
}

// Hex returns an opaque entry defined by a hex spec.
func Hex(name, spec string) Entry {
	return Entry{Name: name, Spec: spec, Opacity: 1}
}

// HexAlpha returns a hex entry that composites below full opacity.
func HexAlpha(name, spec string, opacity float64) Entry {
	return Entry{Name: name, Spec: spec, Opacity: opacity}
}

// Tint returns an entry that tints a named base color with an opacity.
func Tint(name string, base BaseColor, opacity float64) Entry {
	return Entry{Name: name, Base: base, Opacity: opacity}
}

// Resolve returns the entry's color before compositing. Hex entries
// may fail with a MalformedColorSpecError; named base colors cannot.
func (e Entry) Resolve() (RGBA, error) {
	if e.Base != BaseNone {
		return e.Base.rgba(), nil
	}
	return ParseHex(e.Spec)
}

// Descriptor is the caption's color-source text: the hex spec as
// authored, or the base color's name.
func (e Entry) Descriptor() string {
	if e.Base != BaseNone {
		return e.Base.String()
	}
	return e.Spec
}

// Caption formats "name: descriptor", appending the opacity only when
// the entry composites below 1.
func (e Entry) Caption() string {
	if e.Opacity != 1 {
		return fmt.Sprintf("%s: %s (%s)", e.Name, e.Descriptor(), formatOpacity(e.Opacity))
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Descriptor())
}

// ResolvedCaption formats the caption with the opaque hex the entry
// produces once composited over bg, instead of the authored source.
// No opacity suffix: the compositing is already folded in.
func (e Entry) ResolvedCaption(bg RGBA) string {
	c, err := e.Resolve()
	if err != nil {
		c = Fallback
	}
	return fmt.Sprintf("%s: %s", e.Name, c.Over(bg, e.Opacity).Hex())
}

func formatOpacity(o float64) string {
	return strconv.FormatFloat(o, 'g', -1, 64)
}

// Category is a named, ordered group of entries. Order is display
// order and fixed.
type Category struct {
	Title   string
	Entries []Entry
}

// Palette is the complete ordered set of categories shown on screen.
type Palette []Category

// EntryCount returns the total number of entries across all categories.
func (p Palette) EntryCount() int {
	n := 0
	for _, c := range p {
		n += len(c.Entries)
	}
	return n
}

// Titles returns the category titles in display order.
func (p Palette) Titles() []string {
	titles := make([]string, len(p))
	for i, c := range p {
		titles[i] = c.Title
	}
	return titles
}

// defaultPalette is the canonical design system data: five categories,
// eighteen entries, authored once and only ever copied out.
var defaultPalette = Palette{
	{
		Title: "Background Colors",
		Entries: []Entry{
			Hex("Base", "#0A0A0F"),
			Hex("Surface", "#12121A"),
			Hex("Elevated", "#1A1A26"),
			Hex("Overlay", "#22222E"),
			HexAlpha("Scrim", "#000000", 0.6),
		},
	},
	{
		Title: "Text Colors",
		Entries: []Entry{
			Hex("Primary", "#FFFFFF"),
			Hex("Secondary", "#B4B8C5"),
			Hex("Muted", "#6E7180"),
			Tint("Disabled", BaseWhite, 0.38),
		},
	},
	{
		Title: "Accent Colors",
		Entries: []Entry{
			Hex("Azure", "#00AEEF"),
			Hex("Violet", "#7B5FC7"),
			Hex("Coral", "#FF7A93"),
		},
	},
	{
		Title: "Status Colors",
		Entries: []Entry{
			Hex("Success", "#50FA7B"),
			Hex("Warning", "#FFB86C"),
			Hex("Error", "#FF5555"),
		},
	},
	{
		Title: "Glassmorphic Effects",
		Entries: []Entry{
			Tint("Glass Panel", BaseWhite, 0.08),
			Tint("Glass Border", BaseWhite, 0.16),
			Tint("Glass Highlight", BaseWhite, 0.24),
		},
	},
}

// Default returns the design system palette: five fixed categories in
// display order. Each call returns a fresh copy so callers cannot
// mutate the canonical data.
func Default() Palette {
	p := make(Palette, len(defaultPalette))
	for i, c := range defaultPalette {
		entries := make([]Entry, len(c.Entries))
		copy(entries, c.Entries)
		p[i] = Category{Title: c.Title, Entries: entries}
	}
	return p
}
