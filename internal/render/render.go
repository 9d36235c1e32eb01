// Package render rasterizes documents for the on-screen editor and for PNG
// export. It is a deliberately small software renderer: enough SVG to cover
// the shapes the editor can produce, no more.
package render

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/example/vectorpad/internal/editor"
	"github.com/example/vectorpad/internal/svg"
	"github.com/example/vectorpad/internal/theme"
)

// Renderer rasterizes documents using a theme for the canvas plate, grid
// and selection highlight colors.
type Renderer struct {
	theme *theme.Theme
}

// New returns a Renderer. A nil theme falls back to the default palette.
func New(th *theme.Theme) *Renderer {
	if th == nil {
		th = theme.Default()
	}
	return &Renderer{theme: th}
}

// Render rasterizes the document into a fresh image: plate, grid, then
// every primitive in stacking order. Selected shapes are drawn onto their
// own layer so the highlight shadow can be composited underneath them.
func (r *Renderer) Render(doc *svg.Document) *image.RGBA {
	w := int(math.Round(doc.Width))
	h := int(math.Round(doc.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	draw.Draw(img, img.Bounds(), image.NewUniform(r.theme.Canvas(doc.Theme)), image.Point{}, draw.Src)
	r.drawGrid(img, doc)

	for _, n := range doc.Primitives() {
		if n.HasClass(editor.SelectedClass) {
			layer := image.NewRGBA(img.Bounds())
			r.drawNode(layer, n)
			glow := ApplyShadow(layer, SelectionShadowOptions(r.theme.SelectionGlow))
			draw.Draw(img, img.Bounds(), glow, img.Bounds().Min, draw.Over)
			continue
		}
		r.drawNode(img, n)
	}
	return img
}

func (r *Renderer) drawGrid(img *image.RGBA, doc *svg.Document) {
	cell := 20
	if p := doc.Lookup(svg.GridPatternID); p != nil && p.Width >= 1 {
		cell = int(math.Round(p.Width))
	}
	col := r.theme.GridLine(doc.Theme)
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += cell {
		drawLine(img, x, b.Min.Y, x, b.Max.Y-1, col, 1)
	}
	for y := b.Min.Y; y < b.Max.Y; y += cell {
		drawLine(img, b.Min.X, y, b.Max.X-1, y, col, 1)
	}
}

func (r *Renderer) drawNode(img *image.RGBA, n *svg.Node) {
	thick := int(math.Round(n.StrokeWidth))
	if thick < 1 {
		thick = 1
	}
	switch n.Kind {
	case svg.KindRect:
		rect := image.Rect(round(n.X), round(n.Y), round(n.X+n.Width), round(n.Y+n.Height))
		if col, ok := parsePaint(n.Fill); ok {
			fillRect(img, rect, col)
		}
		if col, ok := parsePaint(n.Stroke); ok {
			strokeRect(img, rect, col, thick)
		}
	case svg.KindCircle:
		if col, ok := parsePaint(n.Fill); ok {
			fillCircle(img, round(n.CX), round(n.CY), round(n.R), col)
		}
		if col, ok := parsePaint(n.Stroke); ok {
			drawCircle(img, round(n.CX), round(n.CY), round(n.R), col, thick)
		}
	case svg.KindLine:
		if col, ok := parsePaint(n.Stroke); ok {
			drawLine(img, round(n.X1), round(n.Y1), round(n.X2), round(n.Y2), col, thick)
		}
	case svg.KindPath:
		col, ok := parsePaint(n.Stroke)
		if !ok {
			return
		}
		pts := editor.PathPoints(n.D)
		if len(pts) == 0 {
			return
		}
		ipts := make([]image.Point, len(pts))
		for i, p := range pts {
			ipts[i] = image.Pt(round(p.X), round(p.Y))
		}
		drawPolyline(img, ipts, col, thick)
	case svg.KindText:
		if n.Content == "" {
			return
		}
		col, ok := parsePaint(n.Fill)
		if !ok {
			return
		}
		size := n.FontSize
		if size <= 0 {
			size = editor.TextFontSize
		}
		// Best effort: a missing font leaves the shape invisible, not the
		// render failed.
		_ = DrawText(img, round(n.X), round(n.Y), n.Content, col, size)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

// EncodePNG writes the rasterized document to w as a PNG.
func (r *Renderer) EncodePNG(w io.Writer, doc *svg.Document) error {
	return png.Encode(w, r.Render(doc))
}
