package overlays

import (
	"strings"
	"testing"

	"swatch/pkg/common"
)

func TestHelpDialogListsAllSections(t *testing.T) {
	d := NewHelpDialog(common.NewKeyMap())
	d.SetSize(120, 40)

	view := d.View()
	for _, section := range []string{"Navigation", "Captions", "Global"} {
		if !strings.Contains(view, section) {
			t.Errorf("help dialog missing section %q", section)
		}
	}
	for _, hint := range []string{"scroll up", "composited hex", "quit"} {
		if !strings.Contains(view, hint) {
			t.Errorf("help dialog missing hint %q", hint)
		}
	}
	if !strings.Contains(view, "Press any key to close") {
		t.Error("help dialog missing close hint")
	}
}
