package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the viewer's keybindings. Everything is global: the
// screen has a single focusable surface, the palette viewport.
type KeyMap struct {
	// Truly global keys
	Quit key.Binding // q, Ctrl+C - quit
	Help key.Binding // ? - show keybindings

	// Viewport navigation
	Up       key.Binding // ↑, k - scroll up
	Down     key.Binding // ↓, j - scroll down
	PageUp   key.Binding // PgUp, b - page up
	PageDown key.Binding // PgDn, f, Space - page down
	Top      key.Binding // g, Home - jump to first category
	Bottom   key.Binding // G, End - jump to last category

	// Caption controls
	ResolvedHex key.Binding // x - toggle composited hex captions
}

// NewKeyMap creates a KeyMap with the default bindings.
func NewKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keybindings"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn/f", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),

		ResolvedHex: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "composited hex"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up,
		k.Down,
		k.ResolvedHex,
		k.Help,
		k.Quit,
	}
}

// FullHelp returns the bindings for the help overlay, grouped by row.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Help},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.ResolvedHex},
	}
}

// HelpSections returns the help overlay's sections in display order.
func (k *KeyMap) HelpSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Keys:  []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		},
		{
			Title: "Captions",
			Keys:  []key.Binding{k.ResolvedHex},
		},
		{
			Title: "Global",
			Keys:  []key.Binding{k.Help, k.Quit},
		},
	}
}

// HelpSection is one titled group of bindings in the help overlay.
type HelpSection struct {
	Title string
	Keys  []key.Binding
}
