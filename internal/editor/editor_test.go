package editor

import (
	"math"
	"testing"

	"github.com/example/vectorpad/internal/svg"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRectNormalizedInAllQuadrants(t *testing.T) {
	anchor := Point{100, 100}
	cases := []struct {
		name string
		to   Point
	}{
		{"down-right", Point{150, 180}},
		{"down-left", Point{40, 180}},
		{"up-right", Point{150, 30}},
		{"up-left", Point{40, 30}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := New(WithTool(ToolRect))
			e.PointerDown(anchor)
			e.PointerMove(tc.to)
			e.PointerUp()

			prims := e.Document().Primitives()
			if len(prims) != 1 {
				t.Fatalf("expected 1 primitive, got %d", len(prims))
			}
			r := prims[0]
			wantX := math.Min(anchor.X, tc.to.X)
			wantY := math.Min(anchor.Y, tc.to.Y)
			wantW := math.Abs(tc.to.X - anchor.X)
			wantH := math.Abs(tc.to.Y - anchor.Y)
			if !almostEqual(r.X, wantX) || !almostEqual(r.Y, wantY) {
				t.Errorf("origin (%v,%v), want (%v,%v)", r.X, r.Y, wantX, wantY)
			}
			if !almostEqual(r.Width, wantW) || !almostEqual(r.Height, wantH) {
				t.Errorf("size (%v,%v), want (%v,%v)", r.Width, r.Height, wantW, wantH)
			}
			if r.Width < 0 || r.Height < 0 {
				t.Errorf("negative size %vx%v", r.Width, r.Height)
			}
		})
	}
}

func TestCircleRadiusIsEuclideanDistance(t *testing.T) {
	e := New(WithTool(ToolCircle))
	e.PointerDown(Point{10, 20})
	e.PointerMove(Point{13, 24})
	e.PointerUp()

	prims := e.Document().Primitives()
	if len(prims) != 1 {
		t.Fatalf("expected 1 primitive, got %d", len(prims))
	}
	c := prims[0]
	if !almostEqual(c.CX, 10) || !almostEqual(c.CY, 20) {
		t.Errorf("center (%v,%v), want (10,20)", c.CX, c.CY)
	}
	if !almostEqual(c.R, 5) {
		t.Errorf("radius %v, want 5", c.R)
	}
}

func TestLineAnchorsFirstEndpoint(t *testing.T) {
	e := New(WithTool(ToolLine))
	e.PointerDown(Point{1, 2})
	e.PointerMove(Point{30, 40})
	e.PointerMove(Point{50, 60})
	e.PointerUp()

	l := e.Document().Primitives()[0]
	if !almostEqual(l.X1, 1) || !almostEqual(l.Y1, 2) {
		t.Errorf("start moved to (%v,%v)", l.X1, l.Y1)
	}
	if !almostEqual(l.X2, 50) || !almostEqual(l.Y2, 60) {
		t.Errorf("end (%v,%v), want (50,60)", l.X2, l.Y2)
	}
}

func TestPencilAccumulatesAbsoluteCommands(t *testing.T) {
	e := New(WithTool(ToolPencil))
	e.PointerDown(Point{1, 1})
	e.PointerMove(Point{2, 3})
	e.PointerMove(Point{4, 5})

	p := e.Document().Primitives()[0]
	want := "M 1 1 L 2 3 L 4 5"
	if p.D != want {
		t.Fatalf("path data %q, want %q", p.D, want)
	}
	if p.Fill != "none" || p.LineCap != "round" || p.LineJoin != "round" {
		t.Errorf("unexpected stroke styling: fill=%q cap=%q join=%q", p.Fill, p.LineCap, p.LineJoin)
	}

	// Release resets the buffer but keeps the committed path.
	e.PointerUp()
	if got := e.Document().Primitives()[0].D; got != want {
		t.Errorf("path data changed on release: %q", got)
	}
}

func TestPencilSessionsAreIndependent(t *testing.T) {
	e := New(WithTool(ToolPencil))
	e.PointerDown(Point{0, 0})
	e.PointerMove(Point{1, 1})
	e.PointerUp()
	e.PointerDown(Point{10, 10})
	e.PointerMove(Point{11, 11})
	e.PointerUp()

	prims := e.Document().Primitives()
	if len(prims) != 2 {
		t.Fatalf("expected 2 strokes, got %d", len(prims))
	}
	if prims[1].D != "M 10 10 L 11 11" {
		t.Errorf("second stroke carried earlier points: %q", prims[1].D)
	}
}

func TestUpdateWithoutActiveShapeIsNoop(t *testing.T) {
	for _, tool := range []Tool{ToolRect, ToolCircle, ToolLine, ToolPencil} {
		e := New(WithTool(tool))
		// Move without a preceding press.
		e.PointerMove(Point{5, 5})
		if got := len(e.Document().Primitives()); got != 0 {
			t.Errorf("%v: move without press created %d primitives", tool, got)
		}
	}
}

func TestClearThenUpdateIsNoop(t *testing.T) {
	e := New(WithTool(ToolRect))
	e.PointerDown(Point{0, 0})
	e.Clear()
	e.PointerMove(Point{50, 50})
	e.PointerUp()
	if got := len(e.Document().Primitives()); got != 0 {
		t.Fatalf("expected empty canvas after clear, got %d primitives", got)
	}
}

func TestTextCommitAndCancel(t *testing.T) {
	e := New(WithTool(ToolText))
	e.PointerDown(Point{40, 50})
	req := e.TextPending()
	if req == nil {
		t.Fatal("expected a pending text request")
	}
	if !almostEqual(req.At.X, 40) || !almostEqual(req.At.Y, 50) {
		t.Errorf("request at (%v,%v), want (40,50)", req.At.X, req.At.Y)
	}

	// The gesture machine is frozen while the request is outstanding.
	e.PointerDown(Point{0, 0})
	if e.Drawing() {
		t.Error("pointer press started a gesture while awaiting text")
	}

	n := e.CommitText("hello")
	if n == nil {
		t.Fatal("expected a text node")
	}
	if n.Content != "hello" || n.FontSize != TextFontSize {
		t.Errorf("unexpected node: content=%q size=%v", n.Content, n.FontSize)
	}

	// Empty input is a valid no-op outcome.
	e.PointerDown(Point{1, 1})
	if got := e.CommitText("   "); got != nil {
		t.Errorf("whitespace input created a node: %+v", got)
	}
	e.PointerDown(Point{1, 1})
	e.CancelText()
	if e.TextPending() != nil {
		t.Error("cancel left the request pending")
	}
	if got := len(e.Document().Primitives()); got != 1 {
		t.Errorf("expected exactly 1 primitive, got %d", got)
	}
}

func TestSelectThenBackgroundClickDeselects(t *testing.T) {
	e := New(WithTool(ToolRect))
	e.PointerDown(Point{10, 10})
	e.PointerMove(Point{60, 60})
	e.PointerUp()
	n := e.Document().Primitives()[0]

	e.SetTool(ToolSelect)
	e.PointerDown(Point{30, 30})
	e.PointerUp()
	if len(e.Selection()) != 1 {
		t.Fatalf("expected 1 selected node, got %d", len(e.Selection()))
	}
	if !n.HasClass(SelectedClass) || n.Filter == "" {
		t.Error("selection highlight not applied")
	}

	e.PointerDown(Point{500, 500})
	e.PointerUp()
	e.Click(Point{500, 500})
	if len(e.Selection()) != 0 {
		t.Fatal("background click left selection populated")
	}
	if n.HasClass(SelectedClass) || n.Filter != "" {
		t.Error("highlight survived deselection")
	}
}

func TestSelectionIsSingle(t *testing.T) {
	e := New(WithTool(ToolRect))
	e.PointerDown(Point{0, 0})
	e.PointerMove(Point{20, 20})
	e.PointerUp()
	e.PointerDown(Point{100, 100})
	e.PointerMove(Point{120, 120})
	e.PointerUp()
	first := e.Document().Primitives()[0]
	second := e.Document().Primitives()[1]

	e.SetTool(ToolSelect)
	e.PointerDown(Point{10, 10})
	e.PointerUp()
	e.PointerDown(Point{110, 110})
	e.PointerUp()

	sel := e.Selection()
	if len(sel) != 1 || sel[0].Node != second {
		t.Fatalf("expected only the second rect selected")
	}
	if first.HasClass(SelectedClass) {
		t.Error("first rect kept its highlight after reselection")
	}
}

func TestDragAppliesIncrementalDeltas(t *testing.T) {
	e := New(WithTool(ToolRect))
	e.PointerDown(Point{10, 10})
	e.PointerMove(Point{40, 40})
	e.PointerUp()
	r := e.Document().Primitives()[0]

	e.SetTool(ToolSelect)
	e.PointerDown(Point{20, 20})
	e.PointerMove(Point{25, 22}) // d1 = (5, 2)
	e.PointerMove(Point{32, 30}) // d2 = (7, 8)
	e.PointerUp()

	if !almostEqual(r.X, 22) || !almostEqual(r.Y, 20) {
		t.Fatalf("rect at (%v,%v), want (22,20): deltas must accumulate, not rebase", r.X, r.Y)
	}
}

func TestDragTranslatesEveryKind(t *testing.T) {
	e := New()
	doc := e.Document()

	line := svg.NewNode(svg.KindLine)
	line.X1, line.Y1, line.X2, line.Y2 = 0, 0, 10, 10
	line.Stroke = "#000000"
	line.StrokeWidth = 2
	doc.Append(line)

	e.SetTool(ToolSelect)
	e.PointerDown(Point{5, 5})
	if len(e.Selection()) != 1 {
		t.Fatal("line not hit")
	}
	e.PointerMove(Point{8, 9})
	e.PointerUp()

	if !almostEqual(line.X1, 3) || !almostEqual(line.Y1, 4) || !almostEqual(line.X2, 13) || !almostEqual(line.Y2, 14) {
		t.Errorf("line endpoints (%v,%v)-(%v,%v), want (3,4)-(13,14)", line.X1, line.Y1, line.X2, line.Y2)
	}
}

func TestDeleteSelectedRemovesFromDocument(t *testing.T) {
	e := New(WithTool(ToolCircle))
	e.PointerDown(Point{50, 50})
	e.PointerMove(Point{80, 50})
	e.PointerUp()

	e.SetTool(ToolSelect)
	e.PointerDown(Point{50, 50})
	e.PointerUp()
	e.DeleteSelected()

	if got := len(e.Document().Primitives()); got != 0 {
		t.Fatalf("expected empty canvas, got %d primitives", got)
	}
	if len(e.Selection()) != 0 {
		t.Error("selection set not emptied")
	}
}

func TestUndoPopsLastPrimitiveOnly(t *testing.T) {
	e := New(WithTool(ToolRect))
	for i := 0; i < 3; i++ {
		x := float64(i * 50)
		e.PointerDown(Point{x, 0})
		e.PointerMove(Point{x + 20, 20})
		e.PointerUp()
	}
	prims := e.Document().Primitives()
	p1, p2, p3 := prims[0], prims[1], prims[2]

	removed := e.Undo()
	if removed != p3 {
		t.Fatalf("undo removed %v, want the last inserted shape", removed)
	}
	rest := e.Document().Primitives()
	if len(rest) != 2 || rest[0] != p1 || rest[1] != p2 {
		t.Fatalf("expected [p1, p2] to remain, got %d primitives", len(rest))
	}

	e.Undo()
	e.Undo()
	if got := e.Undo(); got != nil {
		t.Errorf("undo on an empty canvas removed %v", got)
	}
}

func TestUndoPurgesStaleSelection(t *testing.T) {
	e := New(WithTool(ToolRect))
	e.PointerDown(Point{0, 0})
	e.PointerMove(Point{30, 30})
	e.PointerUp()

	e.SetTool(ToolSelect)
	e.PointerDown(Point{15, 15})
	e.PointerUp()
	if len(e.Selection()) != 1 {
		t.Fatal("rect not selected")
	}

	e.Undo()
	if len(e.Selection()) != 0 {
		t.Error("selection still references the removed node")
	}
}

func TestGridScaffoldingNeverSelectable(t *testing.T) {
	e := New()
	for _, n := range e.Document().Nodes() {
		if n.IsPrimitive() {
			t.Fatalf("scaffolding node %s classified as primitive", n.Kind)
		}
		if Selectable(n) {
			t.Fatalf("scaffolding node %s is selectable", n.Kind)
		}
	}
	// A press anywhere on the empty canvas must not select the plate.
	e.SetTool(ToolSelect)
	e.PointerDown(Point{400, 300})
	e.PointerUp()
	if len(e.Selection()) != 0 {
		t.Fatal("background plate was selected")
	}
}

func TestPointerLeaveEndsSession(t *testing.T) {
	e := New(WithTool(ToolPencil))
	e.PointerDown(Point{0, 0})
	e.PointerMove(Point{5, 5})
	e.PointerLeave()
	if e.Drawing() {
		t.Fatal("drawing flag stuck after pointer leave")
	}
	e.PointerMove(Point{100, 100})
	if got := e.Document().Primitives()[0].D; got != "M 0 0 L 5 5" {
		t.Errorf("stroke mutated after leave: %q", got)
	}
}

func TestStyleIsReadAtCreationTime(t *testing.T) {
	e := New(WithTool(ToolRect), WithStyle(Style{Stroke: "#ff0000", Fill: "#00ff00", StrokeWidth: 3}))
	e.PointerDown(Point{0, 0})
	e.PointerMove(Point{10, 10})
	e.PointerUp()

	e.SetStroke("#0000ff")
	e.SetFill("#ffffff")
	e.SetStrokeWidth(9)

	r := e.Document().Primitives()[0]
	if r.Stroke != "#ff0000" || r.Fill != "#00ff00" || r.StrokeWidth != 3 {
		t.Errorf("style changed retroactively: stroke=%q fill=%q width=%v", r.Stroke, r.Fill, r.StrokeWidth)
	}
}

func TestToggleTheme(t *testing.T) {
	e := New()
	if got := e.ToggleTheme(); got != "dark" {
		t.Fatalf("first toggle gave %q, want dark", got)
	}
	if got := e.ToggleTheme(); got != "light" {
		t.Fatalf("second toggle gave %q, want light", got)
	}
}
