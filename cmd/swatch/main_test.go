package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"swatch/pkg/config"
)

func pressKey(t *testing.T, m tea.Model, r rune) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func sizedModel(t *testing.T) tea.Model {
	t.Helper()
	m := initialModel(config.Default(), "truecolor")
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
	return sized
}

func TestViewerShowsAllCategoriesInOrder(t *testing.T) {
	view := sizedModel(t).View()

	if !strings.Contains(view, "Design System Palette") {
		t.Error("title bar missing")
	}

	last := -1
	for _, title := range []string{
		"Background Colors",
		"Text Colors",
		"Accent Colors",
		"Status Colors",
		"Glassmorphic Effects",
	} {
		idx := strings.Index(view, title)
		if idx < 0 {
			t.Fatalf("view missing category %q", title)
		}
		if idx <= last {
			t.Errorf("category %q out of order", title)
		}
		last = idx
	}
}

func TestResolvedHexToggle(t *testing.T) {
	m := sizedModel(t)

	if !strings.Contains(m.View(), "white (0.08)") {
		t.Fatal("authored caption missing before toggle")
	}

	toggled, _ := pressKey(t, m, 'x')
	if strings.Contains(toggled.View(), "white (") {
		t.Error("authored caption still shown after toggle")
	}

	back, _ := pressKey(t, toggled, 'x')
	if !strings.Contains(back.View(), "white (0.08)") {
		t.Error("authored caption missing after toggling back")
	}
}

func TestHelpOverlayOpensAndCloses(t *testing.T) {
	m := sizedModel(t)

	withHelp, _ := pressKey(t, m, '?')
	view := withHelp.View()
	if !strings.Contains(view, "Press any key to close") {
		t.Fatal("help overlay not shown after ?")
	}
	if strings.Contains(view, "Background Colors") {
		t.Error("palette rendered underneath the help overlay")
	}

	closed, _ := pressKey(t, withHelp, 'j')
	if !strings.Contains(closed.View(), "Background Colors") {
		t.Error("palette not restored after closing help")
	}
}

func TestQuitKey(t *testing.T) {
	m := sizedModel(t)

	_, cmd := pressKey(t, m, 'q')
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q command = %T, want tea.QuitMsg", cmd())
	}
}

func TestProfileNames(t *testing.T) {
	if got := applyProfile("truecolor"); got != "truecolor" {
		t.Errorf("applyProfile(truecolor) = %q", got)
	}
	if got := applyProfile("256"); got != "256color" {
		t.Errorf("applyProfile(256) = %q", got)
	}
	if got := applyProfile("16"); got != "16color" {
		t.Errorf("applyProfile(16) = %q", got)
	}
}
