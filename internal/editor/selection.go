package editor

import (
	"math"

	"github.com/example/vectorpad/internal/svg"
)

// SelectedClass is the class applied to selected nodes.
const SelectedClass = "selected"

// selectedFilter is the visual highlight baked into a selected node's
// filter attribute. It is applied and removed together with membership in
// the selection set, never separately.
const selectedFilter = "drop-shadow(0 0 4px #3b82f6)"

// hitSlop widens hit targets so thin strokes remain clickable.
const hitSlop = 4.0

// SelectionRecord ties a selected node to its identifier. The set currently
// holds at most one record; the shape of the data allows more.
type SelectionRecord struct {
	ID       string
	Node     *svg.Node
	Selected bool
}

// Selection returns the current selection records.
func (e *Editor) Selection() []*SelectionRecord {
	out := make([]*SelectionRecord, len(e.selection))
	copy(out, e.selection)
	return out
}

// Selectable reports whether the node is a candidate for selection: a
// drawable primitive that is not part of the canvas scaffolding.
func Selectable(n *svg.Node) bool { return n.IsPrimitive() }

// beginSelect resolves a select-tool press: a hit on a selectable node
// selects it and opens a drag session; anything else deselects.
func (e *Editor) beginSelect(p Point) {
	hit := e.HitTest(p)
	if hit == nil {
		e.ClearSelection()
		return
	}
	e.Select(hit)
	e.isDragging = true
	e.dragOffset = p
}

// Select makes n the sole selected node, replacing any prior selection and
// applying the highlight.
func (e *Editor) Select(n *svg.Node) {
	if n == nil || !Selectable(n) {
		return
	}
	e.ClearSelection()
	n.AddClass(SelectedClass)
	n.Filter = selectedFilter
	e.selection = []*SelectionRecord{{ID: n.ID, Node: n, Selected: true}}
}

// ClearSelection removes the highlight from every selected node and empties
// the selection set.
func (e *Editor) ClearSelection() {
	for _, rec := range e.selection {
		if rec.Node != nil {
			rec.Node.RemoveClass(SelectedClass)
			rec.Node.Filter = ""
		}
	}
	e.selection = nil
}

// Click handles a plain click while the select tool is active: a click on
// the bare canvas clears the selection. Clicks that land on a shape are
// handled by the press that preceded them.
func (e *Editor) Click(p Point) {
	if e.tool != ToolSelect {
		return
	}
	if e.HitTest(p) == nil {
		e.ClearSelection()
	}
}

// DeleteSelected removes every selected node from the document and empties
// the selection set.
func (e *Editor) DeleteSelected() {
	for _, rec := range e.selection {
		e.doc.Remove(rec.ID)
	}
	e.selection = nil
}

// HitTest returns the topmost selectable node at p, or nil. Structural
// nodes such as the grid pattern and the background plate are never
// returned, whatever the pointer lands on.
func (e *Editor) HitTest(p Point) *svg.Node {
	prims := e.doc.Primitives()
	for i := len(prims) - 1; i >= 0; i-- {
		if hitNode(prims[i], p) {
			return prims[i]
		}
	}
	return nil
}

func hitNode(n *svg.Node, p Point) bool {
	slop := hitSlop + n.StrokeWidth/2
	switch n.Kind {
	case svg.KindRect:
		return p.X >= n.X-slop && p.X <= n.X+n.Width+slop &&
			p.Y >= n.Y-slop && p.Y <= n.Y+n.Height+slop
	case svg.KindCircle:
		return math.Hypot(p.X-n.CX, p.Y-n.CY) <= n.R+slop
	case svg.KindLine:
		return segmentDistance(p, Point{n.X1, n.Y1}, Point{n.X2, n.Y2}) <= slop
	case svg.KindPath:
		pts := pathPoints(n.D)
		if len(pts) == 1 {
			return math.Hypot(p.X-pts[0].X, p.Y-pts[0].Y) <= slop
		}
		for i := 1; i < len(pts); i++ {
			if segmentDistance(p, pts[i-1], pts[i]) <= slop {
				return true
			}
		}
		return false
	case svg.KindText:
		w, h := textExtent(n)
		return p.X >= n.X-slop && p.X <= n.X+w+slop &&
			p.Y >= n.Y-h-slop && p.Y <= n.Y+slop
	default:
		return false
	}
}

// textExtent approximates the box of a text node. The y coordinate of a
// text node is its baseline.
func textExtent(n *svg.Node) (w, h float64) {
	size := n.FontSize
	if size <= 0 {
		size = TextFontSize
	}
	return float64(len([]rune(n.Content))) * size * 0.6, size
}

// segmentDistance returns the distance from p to the segment a-b.
func segmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
