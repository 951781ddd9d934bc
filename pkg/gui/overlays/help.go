package overlays

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"swatch/pkg/common"
	"swatch/pkg/gui/theme"
)

// HelpDialog is an overlay listing every keybinding by section.
type HelpDialog struct {
	width  int
	height int
	keys   *common.KeyMap
}

// Styling for the help dialog
var (
	helpOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(theme.DialogBorder)).
				Padding(1, 2).
				MaxWidth(60)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.AccentColor)).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(theme.HeadingColor)).
				MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.CaptionColor))

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted))

	helpFooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextMuted)).
			Italic(true).
			MarginTop(1)
)

// NewHelpDialog creates a help dialog for the given keymap.
func NewHelpDialog(keys *common.KeyMap) *HelpDialog {
	return &HelpDialog{keys: keys}
}

// SetSize updates the dialog dimensions.
func (h *HelpDialog) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the help dialog content.
func (h *HelpDialog) View() string {
	var content []string

	content = append(content, helpTitleStyle.Render("Swatch - Design System Palette"))

	for _, section := range h.keys.HelpSections() {
		content = append(content, helpSectionStyle.Render(section.Title))
		for _, b := range section.Keys {
			if !b.Enabled() {
				continue
			}
			hk := b.Help()
			line := "  " + helpKeyStyle.Render(padRight(hk.Key, 12)) + helpDescStyle.Render(hk.Desc)
			content = append(content, line)
		}
	}

	content = append(content, "")
	content = append(content, helpFooterStyle.Render("Press any key to close"))

	return helpOverlayStyle.Render(strings.Join(content, "\n"))
}

// padRight pads a string to the given printable width.
func padRight(s string, length int) string {
	return runewidth.FillRight(s, length)
}
