// Package components holds the building blocks shared by the gui
// packages, chiefly the swatch cell and its chrome constants.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"swatch/pkg/gui/theme"
	"swatch/pkg/palette"
)

const (
	// SwatchBlockWidth and SwatchBlockHeight are the inner dimensions
	// of the color block, in terminal cells.
	SwatchBlockWidth  = 16
	SwatchBlockHeight = 3

	// CaptionRows is the fixed caption height beneath each block.
	// Two rows fit the longest authored caption once word-wrapped.
	CaptionRows = 2
)

// SwatchBaseStyle is the frame drawn around every color block. The
// darkest background swatches would be invisible on the backdrop
// without it.
var SwatchBaseStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(theme.SwatchBorder))

var (
	captionStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.CaptionColor))
	captionErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorStatus))

	backdrop = palette.MustHex(theme.Backdrop)
)

// CellWidth returns the full width of one swatch cell including its
// frame.
func CellWidth() int {
	return SwatchBlockWidth + SwatchBaseStyle.GetHorizontalFrameSize()
}

// CellHeight returns the full height of one swatch cell: the framed
// block plus the caption rows.
func CellHeight() int {
	return SwatchBlockHeight + SwatchBaseStyle.GetVerticalFrameSize() + CaptionRows
}

// Backdrop returns the canvas color translucent swatches composite
// over.
func Backdrop() palette.RGBA {
	return backdrop
}

// Swatch renders one palette entry as a framed color block with its
// caption beneath. When resolvedHex is set the caption shows the
// opaque hex produced by compositing instead of the authored source.
// A malformed entry renders the fallback fill and an error caption; it
// never costs more than its own cell.
func Swatch(entry palette.Entry, resolvedHex bool) string {
	fill, err := entry.Resolve()

	caption := entry.Caption()
	style := captionStyle
	switch {
	case err != nil:
		fill = palette.Fallback
		caption = entry.Name + ": invalid"
		style = captionErrorStyle
	case resolvedHex:
		caption = entry.ResolvedCaption(backdrop)
	}

	resolved := fill.Over(backdrop, entry.Opacity)
	block := SwatchBaseStyle.
		Background(lipgloss.Color(resolved.Hex())).
		Render(blankBlock())

	return lipgloss.JoinVertical(lipgloss.Left, block, style.Render(captionBlock(caption)))
}

func blankBlock() string {
	line := strings.Repeat(" ", SwatchBlockWidth)
	rows := make([]string, SwatchBlockHeight)
	for i := range rows {
		rows[i] = line
	}
	return strings.Join(rows, "\n")
}

// captionBlock word-wraps the caption into exactly CaptionRows lines
// of cell width, truncating overflow with an ellipsis, so rows of
// cells stay rectangular whatever the caption length.
func captionBlock(caption string) string {
	w := CellWidth()

	lines := strings.Split(wordwrap.String(caption, w), "\n")
	if len(lines) > CaptionRows {
		lines = lines[:CaptionRows]
		lines[CaptionRows-1] += "…"
	}
	for i, line := range lines {
		lines[i] = runewidth.FillRight(truncate.StringWithTail(line, uint(w), "…"), w)
	}
	for len(lines) < CaptionRows {
		lines = append(lines, strings.Repeat(" ", w))
	}
	return strings.Join(lines, "\n")
}
