package render

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parsePaint resolves an SVG paint attribute to a concrete color. It
// understands #RRGGBB, #RRGGBBAA and the SVG 1.1 color keywords. "none",
// the empty string and pattern references report ok=false, which callers
// treat as "skip this fill/stroke".
func parsePaint(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" || strings.HasPrefix(s, "url(") {
		return color.RGBA{}, false
	}
	if strings.HasPrefix(s, "#") {
		hex := strings.TrimPrefix(s, "#")
		switch len(hex) {
		case 6:
			val, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return color.RGBA{}, false
			}
			return color.RGBA{
				R: uint8(val >> 16),
				G: uint8((val >> 8) & 0xFF),
				B: uint8(val & 0xFF),
				A: 255,
			}, true
		case 8:
			val, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return color.RGBA{}, false
			}
			return color.RGBA{
				R: uint8(val >> 24),
				G: uint8((val >> 16) & 0xFF),
				B: uint8((val >> 8) & 0xFF),
				A: uint8(val & 0xFF),
			}, true
		}
		return color.RGBA{}, false
	}
	if col, ok := colornames.Map[s]; ok {
		return col, true
	}
	return color.RGBA{}, false
}
