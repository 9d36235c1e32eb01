package config

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
export_dir = /tmp/drawings

[editor]
tool = circle
stroke = #ff0000
fill = #00ff00
stroke_width = 3
canvas_width = 1024
canvas_height = 768
canvas = dark

[notify]
export = true
render = true
copy = false

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}

	if cfg.ExportDir != "/tmp/drawings" {
		t.Errorf("Expected export_dir '/tmp/drawings', got '%s'", cfg.ExportDir)
	}

	if cfg.Editor.Tool != "circle" {
		t.Errorf("Expected tool 'circle', got '%s'", cfg.Editor.Tool)
	}
	if cfg.Editor.Stroke != "#ff0000" || cfg.Editor.Fill != "#00ff00" {
		t.Errorf("Unexpected colors: %+v", cfg.Editor)
	}
	if cfg.Editor.StrokeWidth != 3 {
		t.Errorf("Expected stroke_width 3, got %v", cfg.Editor.StrokeWidth)
	}
	if cfg.Editor.CanvasWidth != 1024 || cfg.Editor.CanvasHeight != 768 {
		t.Errorf("Unexpected canvas size: %+v", cfg.Editor)
	}
	if cfg.Editor.Canvas != "dark" {
		t.Errorf("Expected canvas 'dark', got '%s'", cfg.Editor.Canvas)
	}

	if !cfg.Notify.Export {
		t.Error("Expected notify.export to be true")
	}
	if !cfg.Notify.Render {
		t.Error("Expected notify.render to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}

	if theme.Background.R != 0x11 || theme.Background.G != 0x11 || theme.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", theme.Background)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	if _, err := Parse(strings.NewReader("[editor]\nstroke_width = wide\n")); err == nil {
		t.Error("expected an error for a non-numeric stroke width")
	}
	if _, err := Parse(strings.NewReader("[editor]\ncanvas = sepia\n")); err == nil {
		t.Error("expected an error for an unknown canvas value")
	}
	if _, err := Parse(strings.NewReader("[notify]\nexport = maybe\n")); err == nil {
		t.Error("expected an error for a non-boolean notify value")
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
export_dir = /home/user/drawings

[editor]
tool = line
stroke = #123456
stroke_width = 2
canvas = light

[notify]
export = true
copy = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	// 1. Parse initial input
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	// 2. Generate string representation
	generated := cfg.String()

	// 3. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 4. Compare relevant fields
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.ExportDir != cfg2.ExportDir {
		t.Errorf("ExportDir mismatch: %q vs %q", cfg.ExportDir, cfg2.ExportDir)
	}
	if cfg.Editor != cfg2.Editor {
		t.Errorf("Editor mismatch: %+v vs %+v", cfg.Editor, cfg2.Editor)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	// Check theme persistence
	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if t1.Background != t2.Background {
		t.Errorf("Theme background mismatch: %v vs %v", t1.Background, t2.Background)
	}
}
