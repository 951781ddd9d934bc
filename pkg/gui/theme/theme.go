package theme

// Theme defines the viewer's own chrome colors with semantic naming.
// The design system being displayed lives in pkg/palette; these are
// only the colors of the frame drawn around it.
var (
	// Backdrop is the near-black canvas every translucent swatch
	// composites over. Spec'd once here so the renderer and the
	// resolved-hex captions agree on the result.
	Backdrop = "#050507"

	// Brand colors
	AccentColor = "#00AEEF" // matches the palette's azure for the title bar

	// Text colors
	HeadingColor = "#FFFFFF" // category headings
	CaptionColor = "#C9C9C9" // swatch captions
	TextMuted    = "#7A7A7A" // footer hints, profile indicator

	// Border colors
	SwatchBorder = "#4A4A4A" // frame around each swatch cell
	DialogBorder = "#C9C9C9" // help overlay frame

	// Status colors
	ErrorStatus = "#FF5555" // captions of malformed entries

	// UI colors
	SeparatorColor = "#4A4A4A" // footer separators
)
