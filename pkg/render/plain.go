// Package render writes the palette as plain text, the
// non-interactive counterpart of the TUI viewer for pipes and CI logs.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"swatch/pkg/palette"
)

const blockGlyphs = "██████"

// Plain writes every category heading and entry caption to w, one per
// line, in palette order. With colorize set each entry is preceded by
// a block in its composited color; without it the output is bare text
// safe for any pipe. A malformed entry prints an error caption and
// never stops the listing.
func Plain(w io.Writer, p palette.Palette, bg palette.RGBA, colorize bool) error {
	heading := color.New(color.Bold)

	for i, c := range p {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		var err error
		if colorize {
			_, err = heading.Fprintln(w, c.Title)
		} else {
			_, err = fmt.Fprintln(w, c.Title)
		}
		if err != nil {
			return err
		}

		for _, e := range c.Entries {
			if err := plainEntry(w, e, bg, colorize); err != nil {
				return err
			}
		}
	}
	return nil
}

func plainEntry(w io.Writer, e palette.Entry, bg palette.RGBA, colorize bool) error {
	caption := e.Caption()
	resolved, err := e.Resolve()
	if err != nil {
		resolved = palette.Fallback
		caption = e.Name + ": invalid"
	}

	if !colorize {
		_, err := fmt.Fprintf(w, "  %s\n", caption)
		return err
	}

	composited := resolved.Over(bg, e.Opacity)
	block := color.RGB(
		int(composited.R*255+0.5),
		int(composited.G*255+0.5),
		int(composited.B*255+0.5),
	).Sprint(blockGlyphs)

	_, err = fmt.Fprintf(w, "  %s  %s\n", block, caption)
	return err
}
