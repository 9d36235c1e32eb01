package theme

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	src := `
Name: Test
SelectionGlow: #ff000080
CanvasDark: #101010
Unknown: #123456
`
	th, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if th.Name != "Test" {
		t.Errorf("Name = %q, want Test", th.Name)
	}
	if th.SelectionGlow != (color.RGBA{255, 0, 0, 128}) {
		t.Errorf("SelectionGlow = %v", th.SelectionGlow)
	}
	if th.CanvasDark != (color.RGBA{16, 16, 16, 255}) {
		t.Errorf("CanvasDark = %v", th.CanvasDark)
	}
	// Unset keys keep their defaults.
	if th.CanvasLight != Default().CanvasLight {
		t.Errorf("CanvasLight lost its default: %v", th.CanvasLight)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Foreground: red")); err == nil {
		t.Fatal("expected an error for a non-hex color")
	}
}

func TestEmbeddedThemesParse(t *testing.T) {
	for _, name := range []string{"default", "dark", "high_contrast"} {
		f, err := EmbeddedThemes.Open("defaults/" + name + ".theme")
		if err != nil {
			t.Fatalf("missing embedded theme %s: %v", name, err)
		}
		th, err := Parse(f)
		f.Close()
		if err != nil {
			t.Errorf("embedded theme %s does not parse: %v", name, err)
		} else if th.Name == "" {
			t.Errorf("embedded theme %s has no name", name)
		}
	}
}

func TestCanvasSelection(t *testing.T) {
	th := Default()
	if th.Canvas("dark") != th.CanvasDark {
		t.Error("dark document did not pick the dark plate color")
	}
	if th.Canvas("light") != th.CanvasLight || th.Canvas("") != th.CanvasLight {
		t.Error("light document did not pick the light plate color")
	}
	if th.GridLine("dark") != th.GridLineDark {
		t.Error("dark document did not pick the dark grid color")
	}
}
