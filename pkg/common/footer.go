package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch/pkg/gui/theme"
)

// Footer manages the bottom bar with key hints and the detected color
// profile.
type Footer struct {
	width   int
	height  int
	profile string // color profile name shown on the right of the hints
	keys    *KeyMap
}

// Styling for footer elements
var (
	footerKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.CaptionColor))

	footerDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted))

	footerSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.SeparatorColor))

	footerProfileStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.TextMuted)).
				Italic(true)

	footerStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// NewFooter creates a footer for the given keymap.
func NewFooter(keys *KeyMap) *Footer {
	return &Footer{
		height: 1,
		keys:   keys,
	}
}

// SetSize updates the footer dimensions.
func (f *Footer) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetProfile sets the color profile name shown in the footer.
func (f *Footer) SetProfile(profile string) {
	f.profile = profile
}

// View renders the footer.
func (f *Footer) View() string {
	if f.width == 0 || f.keys == nil {
		return ""
	}

	var parts []string
	for i, b := range f.keys.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		if i > 0 {
			parts = append(parts, footerSeparatorStyle.Render(" • "))
		}
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}

	if f.profile != "" {
		parts = append(parts, footerSeparatorStyle.Render(" │ "))
		parts = append(parts, footerProfileStyle.Render(f.profile))
	}

	content := strings.Join(parts, "")

	// Center the footer content
	return lipgloss.Place(
		f.width,
		f.height,
		lipgloss.Center,
		lipgloss.Center,
		footerStyle.Render(content),
	)
}
