package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/vectorpad/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Export bool
	Render bool
	Copy   bool
}

// EditorDefaults holds the drawing defaults applied when a new canvas is
// opened. Zero values mean "use the built-in default".
type EditorDefaults struct {
	Tool         string
	Stroke       string
	Fill         string
	StrokeWidth  float64
	CanvasWidth  float64
	CanvasHeight float64
	Canvas       string // light or dark
}

// Config holds the application configuration.
type Config struct {
	Theme     string
	ExportDir string
	Editor    EditorDefaults
	Notify    Notify
	Themes    map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Default to empty to allow fallback to Env/Default
		Notify: Notify{
			Export: false,
			Copy:   false,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.ExportDir != "" {
		fmt.Fprintf(&sb, "export_dir = %s\n", c.ExportDir)
	}
	sb.WriteString("\n")

	// Editor section
	sb.WriteString("[editor]\n")
	if c.Editor.Tool != "" {
		fmt.Fprintf(&sb, "tool = %s\n", c.Editor.Tool)
	}
	if c.Editor.Stroke != "" {
		fmt.Fprintf(&sb, "stroke = %s\n", c.Editor.Stroke)
	}
	if c.Editor.Fill != "" {
		fmt.Fprintf(&sb, "fill = %s\n", c.Editor.Fill)
	}
	if c.Editor.StrokeWidth > 0 {
		fmt.Fprintf(&sb, "stroke_width = %g\n", c.Editor.StrokeWidth)
	}
	if c.Editor.CanvasWidth > 0 {
		fmt.Fprintf(&sb, "canvas_width = %g\n", c.Editor.CanvasWidth)
	}
	if c.Editor.CanvasHeight > 0 {
		fmt.Fprintf(&sb, "canvas_height = %g\n", c.Editor.CanvasHeight)
	}
	if c.Editor.Canvas != "" {
		fmt.Fprintf(&sb, "canvas = %s\n", c.Editor.Canvas)
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "render = %v\n", c.Notify.Render)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Themes sections
	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		fmt.Fprintf(&sb, "Background: %s\n", toHex(t.Background))
		fmt.Fprintf(&sb, "Foreground: %s\n", toHex(t.Foreground))
		fmt.Fprintf(&sb, "ButtonBackground: %s\n", toHex(t.ButtonBackground))
		fmt.Fprintf(&sb, "ButtonBackgroundHover: %s\n", toHex(t.ButtonBackgroundHover))
		fmt.Fprintf(&sb, "ButtonBackgroundPress: %s\n", toHex(t.ButtonBackgroundPress))
		fmt.Fprintf(&sb, "ButtonBackgroundOn: %s\n", toHex(t.ButtonBackgroundOn))
		fmt.Fprintf(&sb, "ButtonText: %s\n", toHex(t.ButtonText))
		fmt.Fprintf(&sb, "ButtonBorder: %s\n", toHex(t.ButtonBorder))
		fmt.Fprintf(&sb, "ToolbarBackground: %s\n", toHex(t.ToolbarBackground))
		fmt.Fprintf(&sb, "CanvasLight: %s\n", toHex(t.CanvasLight))
		fmt.Fprintf(&sb, "CanvasDark: %s\n", toHex(t.CanvasDark))
		fmt.Fprintf(&sb, "GridLineLight: %s\n", toHex(t.GridLineLight))
		fmt.Fprintf(&sb, "GridLineDark: %s\n", toHex(t.GridLineDark))
		fmt.Fprintf(&sb, "SelectionGlow: %s\n", toHex(t.SelectionGlow))
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c interface{ RGBA() (r, g, b, a uint32) }) string {
	if rgba, ok := c.(color.RGBA); ok {
		if rgba.A == 255 {
			return fmt.Sprintf("#%02X%02X%02X", rgba.R, rgba.G, rgba.B)
		}
		return fmt.Sprintf("#%02X%02X%02X%02X", rgba.R, rgba.G, rgba.B, rgba.A)
	}

	r, g, b, a := c.RGBA()
	if a == 0 {
		return "#00000000"
	}
	r8 := uint8(r >> 8)
	g8 := uint8(g >> 8)
	b8 := uint8(b >> 8)
	a8 := uint8(a >> 8)

	if a8 == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r8, g8, b8, a8)
}
