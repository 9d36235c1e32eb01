package theme

import (
	"image/color"
)

// Theme defines the color palette for the editor chrome. Shape colors are
// part of the document itself and are never themed; the document's own
// light/dark attribute only switches the canvas plate and grid colors below.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background behind the canvas
	Foreground color.RGBA // Main text color

	// Tool Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonBackgroundOn    color.RGBA // The active tool's button
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA
	ToolbarBackground     color.RGBA

	// Canvas plate and grid, keyed off the document's theme attribute.
	CanvasLight   color.RGBA
	CanvasDark    color.RGBA
	GridLineLight color.RGBA
	GridLineDark  color.RGBA

	// SelectionGlow tints the soft shadow drawn behind selected shapes.
	SelectionGlow color.RGBA
}

// Default returns the hardcoded default theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonBackgroundOn:    color.RGBA{160, 190, 230, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		CanvasLight:           color.RGBA{255, 255, 255, 255},
		CanvasDark:            color.RGBA{32, 33, 36, 255},
		GridLineLight:         color.RGBA{224, 224, 224, 255},
		GridLineDark:          color.RGBA{58, 60, 64, 255},
		SelectionGlow:         color.RGBA{59, 130, 246, 255},
	}
}

// Canvas returns the plate color for a document theme attribute.
func (t *Theme) Canvas(docTheme string) color.RGBA {
	if docTheme == "dark" {
		return t.CanvasDark
	}
	return t.CanvasLight
}

// GridLine returns the grid line color for a document theme attribute.
func (t *Theme) GridLine(docTheme string) color.RGBA {
	if docTheme == "dark" {
		return t.GridLineDark
	}
	return t.GridLineLight
}
