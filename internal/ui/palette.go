package ui

import (
	"image/color"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// PaletteColor pairs a paint attribute value with a display name and the
// concrete color swatched in the toolbar.
type PaletteColor struct {
	Name  string
	Paint string
	Color color.RGBA
}

var strokePalette = []PaletteColor{
	{"black", "#000000", color.RGBA{0, 0, 0, 255}},
	{"white", "#ffffff", color.RGBA{255, 255, 255, 255}},
	{"red", "#e81123", color.RGBA{232, 17, 35, 255}},
	{"orange", "#f7630c", color.RGBA{247, 99, 12, 255}},
	{"yellow", "#fff100", color.RGBA{255, 241, 0, 255}},
	{"green", "#16c60c", color.RGBA{22, 198, 12, 255}},
	{"blue", "#0078d7", color.RGBA{0, 120, 215, 255}},
	{"purple", "#886ce4", color.RGBA{136, 108, 228, 255}},
	{"gray", "#7a7574", color.RGBA{122, 117, 116, 255}},
}

// fillPalette leads with "none" so unfilled outlines stay one click away.
var fillPalette = append([]PaletteColor{
	{"none", "none", color.RGBA{}},
}, strokePalette...)

var widthOptions = []float64{1, 2, 3, 5, 8}

// StrokePalette returns the stroke color choices shown in the toolbar.
func StrokePalette() []PaletteColor {
	out := make([]PaletteColor, len(strokePalette))
	copy(out, strokePalette)
	return out
}

// FillPalette returns the fill choices shown in the toolbar.
func FillPalette() []PaletteColor {
	out := make([]PaletteColor, len(fillPalette))
	copy(out, fillPalette)
	return out
}

// WidthOptions returns the stroke width choices shown in the toolbar.
func WidthOptions() []float64 {
	out := make([]float64, len(widthOptions))
	copy(out, widthOptions)
	return out
}

// strokeIndexOf maps a paint value back to its palette slot, or -1.
func strokeIndexOf(paint string) int {
	for i, pc := range strokePalette {
		if pc.Paint == paint {
			return i
		}
	}
	return -1
}

func fillIndexOf(paint string) int {
	for i, pc := range fillPalette {
		if pc.Paint == paint {
			return i
		}
	}
	return -1
}

func widthIndexOf(w float64) int {
	for i, opt := range widthOptions {
		if opt == w {
			return i
		}
	}
	return -1
}

// paintColor resolves a paint value to a swatchable color. Paints that are
// not plain colors ("none", pattern references) report false.
func paintColor(paint string) (color.RGBA, bool) {
	spec := strings.ToLower(strings.TrimSpace(paint))
	if spec == "" || spec == "none" || strings.HasPrefix(spec, "url(") {
		return color.RGBA{}, false
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, true
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 9) {
		v, err := strconv.ParseUint(spec[1:7], 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, true
	}
	return color.RGBA{}, false
}

// EnsureStrokeColor makes sure the paint has a stroke swatch and returns its
// slot. Unknown paints are appended so configured defaults stay selectable.
func EnsureStrokeColor(paint string) int {
	if idx := strokeIndexOf(paint); idx >= 0 {
		return idx
	}
	c, ok := paintColor(paint)
	if !ok {
		return -1
	}
	strokePalette = append(strokePalette, PaletteColor{Name: paint, Paint: paint, Color: c})
	return len(strokePalette) - 1
}

// EnsureFillColor is EnsureStrokeColor for the fill palette.
func EnsureFillColor(paint string) int {
	if idx := fillIndexOf(paint); idx >= 0 {
		return idx
	}
	c, ok := paintColor(paint)
	if !ok {
		return -1
	}
	fillPalette = append(fillPalette, PaletteColor{Name: paint, Paint: paint, Color: c})
	return len(fillPalette) - 1
}

// EnsureWidth makes sure the width is offered, keeping the options sorted.
func EnsureWidth(w float64) int {
	if w < 1 {
		w = 1
	}
	if idx := widthIndexOf(w); idx >= 0 {
		return idx
	}
	widthOptions = append(widthOptions, w)
	sort.Float64s(widthOptions)
	return widthIndexOf(w)
}
