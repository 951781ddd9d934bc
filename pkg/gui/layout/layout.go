package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swatch/pkg/gui/components"
	"swatch/pkg/gui/theme"
	"swatch/pkg/palette"
)

const (
	TopPaddingRows   = 1
	TitleRows        = 1
	HeadingRows      = 1
	CategoryGapRows  = 1
	FooterRows       = 1
	BottomMarginRows = 1
	HorizontalMargin = 2
	CellGapWidth     = 2
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.HeadingColor))

	backdropStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Backdrop))
)

// Layout manages swatch grid dimensions for the current terminal size.
type Layout struct {
	width  int
	height int

	// Derived per calculate()
	columns      int // swatch cells per row
	contentWidth int // width inside the horizontal margins
}

// New creates a layout for the given terminal dimensions.
func New(width, height int) *Layout {
	l := &Layout{width: width, height: height}
	l.calculate()
	return l
}

// Update recalculates the layout for new terminal dimensions.
func (l *Layout) Update(width, height int) {
	l.width = width
	l.height = height
	l.calculate()
}

// calculate computes how many swatch cells fit per row. A GUI shrinks
// its swatches to fit; a terminal cannot, so narrow windows wrap rows
// instead.
func (l *Layout) calculate() {
	l.contentWidth = l.width - 2*HorizontalMargin
	if l.contentWidth < 0 {
		l.contentWidth = 0
	}

	cell := components.CellWidth()
	l.columns = (l.contentWidth + CellGapWidth) / (cell + CellGapWidth)
	if l.columns < 1 {
		l.columns = 1
	}
}

// RenderCategory renders a heading followed by the category's swatches
// in listed order, evenly spaced, wrapping into further rows when the
// terminal is too narrow for one.
func (l *Layout) RenderCategory(c palette.Category, resolvedHex bool) string {
	cells := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		cells = append(cells, components.Swatch(e, resolvedHex))
	}

	gap := strings.Repeat(" ", CellGapWidth)
	var rows []string
	for start := 0; start < len(cells); start += l.columns {
		end := start + l.columns
		if end > len(cells) {
			end = len(cells)
		}

		row := cells[start]
		for _, cell := range cells[start+1 : end] {
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, gap, cell)
		}
		rows = append(rows, row)
	}

	parts := append([]string{headingStyle.Render(c.Title)}, rows...)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderPalette stacks all categories vertically in palette order,
// separated by consistent spacing, over the dark backdrop.
func (l *Layout) RenderPalette(p palette.Palette, resolvedHex bool) string {
	var parts []string
	for i, c := range p {
		if i > 0 {
			for j := 0; j < CategoryGapRows; j++ {
				parts = append(parts, "")
			}
		}
		parts = append(parts, l.RenderCategory(c, resolvedHex))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return backdropStyle.
		PaddingLeft(HorizontalMargin).
		PaddingRight(HorizontalMargin).
		Render(body)
}

// ViewportHeight returns the rows left for scrollable content once the
// fixed chrome is accounted for.
func (l *Layout) ViewportHeight() int {
	h := l.height - TopPaddingRows - TitleRows - FooterRows - BottomMarginRows
	if h < 1 {
		h = 1
	}
	return h
}

// Columns returns the swatch cells per row at the current width.
func (l *Layout) Columns() int {
	return l.columns
}

// ContentWidth returns the width inside the horizontal margins.
func (l *Layout) ContentWidth() int {
	return l.contentWidth
}

// GetWidth returns the layout width.
func (l *Layout) GetWidth() int {
	return l.width
}

// GetHeight returns the layout height.
func (l *Layout) GetHeight() int {
	return l.height
}
