package ui

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/vectorpad/internal/editor"
	"github.com/example/vectorpad/internal/theme"
)

const (
	toolRowHeight   = 24
	swatchSize      = 18
	widthRowHeight  = 16
	sectionLabelH   = 14
	sectionGap      = 4
	bottomHeight    = 20
	frameDropThresh = 10
)

var toolbarWidth = 96

var toolEntries = []struct {
	label string
	tool  editor.Tool
}{
	{"S:Select", editor.ToolSelect},
	{"X:Rect", editor.ToolRect},
	{"O:Circle", editor.ToolCircle},
	{"L:Line", editor.ToolLine},
	{"P:Pencil", editor.ToolPencil},
	{"T:Text", editor.ToolText},
}

var (
	toolButtons  []*CacheButton
	strokeRects  []image.Rectangle
	fillRects    []image.Rectangle
	widthRects   []image.Rectangle
	shortcutBar  []*Shortcut
	hoverTool    = -1
	hoverStroke  = -1
	hoverFill    = -1
	hoverWidth   = -1
	hoverBar     = -1
)

func paletteCols() int { return (toolbarWidth - 2*sectionGap) / swatchSize }

func paletteRows(n int) int {
	cols := paletteCols()
	return (n + cols - 1) / cols
}

// buildToolbar lays out the fixed left-hand toolbar: tool buttons, then the
// stroke and fill swatch grids, then the width options. The rects never move
// so hit testing reads them directly.
func buildToolbar(th *theme.Theme, onTool func(editor.Tool)) {
	toolButtons = toolButtons[:0]
	y := 0
	for _, entry := range toolEntries {
		t := entry.tool
		tb := &ToolButton{
			label:    entry.label,
			tool:     t,
			theme:    th,
			onSelect: func() { onTool(t) },
		}
		tb.SetRect(image.Rect(0, y, toolbarWidth, y+toolRowHeight))
		toolButtons = append(toolButtons, &CacheButton{Button: tb})
		y += toolRowHeight
	}

	grid := func(n int, y int) ([]image.Rectangle, int) {
		cols := paletteCols()
		rects := make([]image.Rectangle, n)
		for i := range rects {
			cx := sectionGap + (i%cols)*swatchSize
			cy := y + (i/cols)*swatchSize
			rects[i] = image.Rect(cx, cy, cx+swatchSize, cy+swatchSize)
		}
		return rects, y + paletteRows(n)*swatchSize
	}

	y += sectionGap + sectionLabelH
	strokeRects, y = grid(len(strokePalette), y)

	y += sectionGap + sectionLabelH
	fillRects, y = grid(len(fillPalette), y)

	y += sectionGap + sectionLabelH
	widthRects = make([]image.Rectangle, len(widthOptions))
	for i := range widthRects {
		widthRects[i] = image.Rect(sectionGap, y, toolbarWidth-sectionGap, y+widthRowHeight)
		y += widthRowHeight
	}
}

func drawSectionLabel(dst *image.RGBA, th *theme.Theme, label string, y int) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13,
		Dot: fixed.P(sectionGap, y+sectionLabelH-3)}
	d.DrawString(label)
}

func drawToolbar(dst *image.RGBA, th *theme.Theme, tool editor.Tool, style editor.Style, height int) {
	fillRect(dst, image.Rect(0, 0, toolbarWidth, height), th.ToolbarBackground)

	for i, cb := range toolButtons {
		state := StateDefault
		if cb.Button.(*ToolButton).tool == tool {
			state = StateOn
		} else if i == hoverTool {
			state = StateHover
		}
		cb.Draw(dst, state)
	}

	if len(strokeRects) == 0 {
		return
	}
	drawSectionLabel(dst, th, "Stroke", strokeRects[0].Min.Y-sectionLabelH)
	selStroke := strokeIndexOf(style.Stroke)
	for i, r := range strokeRects {
		drawSwatch(dst, th, r, strokePalette[i], i == selStroke, i == hoverStroke)
	}

	drawSectionLabel(dst, th, "Fill", fillRects[0].Min.Y-sectionLabelH)
	selFill := fillIndexOf(style.Fill)
	for i, r := range fillRects {
		drawSwatch(dst, th, r, fillPalette[i], i == selFill, i == hoverFill)
	}

	drawSectionLabel(dst, th, "Width", widthRects[0].Min.Y-sectionLabelH)
	selWidth := widthIndexOf(style.StrokeWidth)
	for i, r := range widthRects {
		if i == selWidth {
			fillRect(dst, r, th.ButtonBackgroundOn)
		} else if i == hoverWidth {
			fillRect(dst, r, th.ButtonBackgroundHover)
		}
		mid := (r.Min.Y + r.Max.Y) / 2
		drawLine(dst, r.Min.X+2, mid, r.Max.X-3, mid, th.Foreground, int(widthOptions[i]))
	}
}

func drawSwatch(dst *image.RGBA, th *theme.Theme, r image.Rectangle, pc PaletteColor, selected, hovered bool) {
	inner := r.Inset(2)
	if pc.Paint == "none" {
		fillRect(dst, inner, th.CanvasLight)
		drawLine(dst, inner.Min.X, inner.Max.Y-1, inner.Max.X-1, inner.Min.Y, strokePalette[2].Color, 1)
	} else {
		fillRect(dst, inner, pc.Color)
	}
	if selected {
		strokeRect(dst, r, th.SelectionGlow, 2)
	} else if hovered {
		strokeRect(dst, r, th.ButtonBorder, 1)
	} else {
		strokeRect(dst, inner, th.ButtonBorder, 1)
	}
}

func drawShortcutBar(dst *image.RGBA, th *theme.Theme, width, height int) {
	fillRect(dst, image.Rect(0, height-bottomHeight, width, height), th.ToolbarBackground)
	x := 2
	for i, sc := range shortcutBar {
		d := &font.Drawer{Face: basicfont.Face7x13}
		w := d.MeasureString(sc.label).Ceil() + 6
		sc.SetRect(image.Rect(x, height-bottomHeight+1, x+w, height-2))
		state := StateDefault
		if i == hoverBar {
			state = StateHover
		}
		sc.Draw(dst, state)
		x += w + 4
	}
}
