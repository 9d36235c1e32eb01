package editor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/example/vectorpad/internal/svg"
)

// pathCmdRe matches an absolute move or line command followed by an x y
// coordinate pair, possibly signed or fractional. Anything else in the path
// data is left alone.
var pathCmdRe = regexp.MustCompile(`([ML])\s*(-?\d*\.?\d+)[\s,]+(-?\d*\.?\d+)`)

// DragSelected translates every selected node by the delta between p and
// the drag offset, then rebases the offset to p. The delta is incremental
// per move event; computing it from the gesture start instead would
// double-apply earlier deltas.
func (e *Editor) DragSelected(p Point) {
	dx := p.X - e.dragOffset.X
	dy := p.Y - e.dragOffset.Y
	for _, rec := range e.selection {
		Translate(rec.Node, dx, dy)
	}
	e.dragOffset = p
}

// Translate moves a node by (dx, dy), rewriting the attributes of its kind.
func Translate(n *svg.Node, dx, dy float64) {
	if n == nil {
		return
	}
	switch n.Kind {
	case svg.KindRect, svg.KindText:
		n.X += dx
		n.Y += dy
	case svg.KindCircle:
		n.CX += dx
		n.CY += dy
	case svg.KindLine:
		n.X1 += dx
		n.Y1 += dy
		n.X2 += dx
		n.Y2 += dy
	case svg.KindPath:
		n.D = TranslatePath(n.D, dx, dy)
	}
}

// PathPoints extracts the coordinate pairs of the absolute move/line
// commands in path data, in order. Renderers and hit testing share it.
func PathPoints(d string) []Point {
	return pathPoints(d)
}

func pathPoints(d string) []Point {
	matches := pathCmdRe.FindAllStringSubmatch(d, -1)
	pts := make([]Point, 0, len(matches))
	for _, m := range matches {
		x, errX := strconv.ParseFloat(m[2], 64)
		y, errY := strconv.ParseFloat(m[3], 64)
		if errX != nil || errY != nil {
			continue
		}
		pts = append(pts, Point{x, y})
	}
	return pts
}

// TranslatePath offsets every absolute move/line coordinate pair in the
// path data by (dx, dy). Unmatched or malformed syntax passes through
// unchanged; this never fails.
func TranslatePath(d string, dx, dy float64) string {
	return pathCmdRe.ReplaceAllStringFunc(d, func(m string) string {
		sub := pathCmdRe.FindStringSubmatch(m)
		x, errX := strconv.ParseFloat(sub[2], 64)
		y, errY := strconv.ParseFloat(sub[3], 64)
		if errX != nil || errY != nil {
			return m
		}
		var sb strings.Builder
		sb.WriteString(sub[1])
		sb.WriteByte(' ')
		sb.WriteString(coord(x + dx))
		sb.WriteByte(' ')
		sb.WriteString(coord(y + dy))
		return sb.String()
	})
}
