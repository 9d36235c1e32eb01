package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/example/vectorpad/internal/svg"
)

// TextFontSize is the fixed font size for text shapes.
const TextFontSize = 16

func coord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (e *Editor) createRect(p Point) {
	n := svg.NewNode(svg.KindRect)
	n.X, n.Y = p.X, p.Y
	n.Fill = e.style.Fill
	n.Stroke = e.style.Stroke
	n.StrokeWidth = e.style.StrokeWidth
	e.doc.Append(n)
	e.active = n
}

// updateRect keeps the rectangle normalized: the origin is the componentwise
// minimum of the anchor and the pointer, so dragging into any quadrant
// produces a valid non-negative size.
func (e *Editor) updateRect(p Point) {
	if e.active == nil {
		return
	}
	e.active.Width = math.Abs(p.X - e.start.X)
	e.active.Height = math.Abs(p.Y - e.start.Y)
	e.active.X = math.Min(e.start.X, p.X)
	e.active.Y = math.Min(e.start.Y, p.Y)
}

func (e *Editor) createCircle(p Point) {
	n := svg.NewNode(svg.KindCircle)
	n.CX, n.CY = p.X, p.Y
	n.Fill = e.style.Fill
	n.Stroke = e.style.Stroke
	n.StrokeWidth = e.style.StrokeWidth
	e.doc.Append(n)
	e.active = n
}

func (e *Editor) updateCircle(p Point) {
	if e.active == nil {
		return
	}
	e.active.R = math.Hypot(p.X-e.start.X, p.Y-e.start.Y)
}

func (e *Editor) createLine(p Point) {
	n := svg.NewNode(svg.KindLine)
	n.X1, n.Y1 = p.X, p.Y
	n.X2, n.Y2 = p.X, p.Y
	n.Stroke = e.style.Stroke
	n.StrokeWidth = e.style.StrokeWidth
	e.doc.Append(n)
	e.active = n
}

func (e *Editor) updateLine(p Point) {
	if e.active == nil {
		return
	}
	e.active.X2, e.active.Y2 = p.X, p.Y
}

func (e *Editor) createPath(p Point) {
	n := svg.NewNode(svg.KindPath)
	n.Fill = "none"
	n.Stroke = e.style.Stroke
	n.StrokeWidth = e.style.StrokeWidth
	n.LineCap = "round"
	n.LineJoin = "round"
	e.pathPts = []Point{p}
	n.D = pathData(e.pathPts)
	e.doc.Append(n)
	e.active = n
}

func (e *Editor) updatePath(p Point) {
	if e.active == nil {
		return
	}
	e.pathPts = append(e.pathPts, p)
	e.active.D = pathData(e.pathPts)
}

// pathData builds the command string for a freehand stroke: one absolute
// move followed by a line command per sample.
func pathData(pts []Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(coord(p.X))
		sb.WriteByte(' ')
		sb.WriteString(coord(p.Y))
	}
	return sb.String()
}

// TextPending returns the outstanding text request, or nil.
func (e *Editor) TextPending() *TextRequest { return e.textPending }

// CommitText resolves a pending text request. Empty or whitespace-only
// content cancels the request and no shape is created.
func (e *Editor) CommitText(content string) *svg.Node {
	req := e.textPending
	if req == nil {
		return nil
	}
	e.textPending = nil
	if strings.TrimSpace(content) == "" {
		return nil
	}
	n := svg.NewNode(svg.KindText)
	n.X, n.Y = req.At.X, req.At.Y
	n.Content = content
	n.FontSize = TextFontSize
	n.Fill = e.style.Fill
	e.doc.Append(n)
	return n
}

// CancelText dismisses a pending text request without creating a shape.
func (e *Editor) CancelText() { e.textPending = nil }
