package svg

import (
	"strings"
	"testing"
)

func newRect(x, y, w, h float64) *Node {
	n := NewNode(KindRect)
	n.X, n.Y, n.Width, n.Height = x, y, w, h
	n.Fill = "#112233"
	n.Stroke = "#000000"
	n.StrokeWidth = 2
	return n
}

func TestDocumentScaffolding(t *testing.T) {
	d := NewDocument(800, 600)
	nodes := d.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("expected defs and plate, got %d nodes", len(nodes))
	}
	if nodes[0].Kind != KindDefs {
		t.Errorf("first node is %v, want defs", nodes[0].Kind)
	}
	plate := nodes[1]
	if plate.Kind != KindRect || !plate.SizeToCanvas {
		t.Errorf("second node is not the full-size plate: %+v", plate)
	}
	if !strings.Contains(plate.Fill, "url(#"+GridPatternID+")") {
		t.Errorf("plate fill %q does not reference the grid pattern", plate.Fill)
	}
	for _, n := range nodes {
		if n.IsPrimitive() {
			t.Errorf("scaffolding node %v classified as primitive", n.Kind)
		}
	}
}

func TestRemoveLastSkipsScaffolding(t *testing.T) {
	d := NewDocument(100, 100)
	if got := d.RemoveLast(); got != nil {
		t.Fatalf("RemoveLast on an empty canvas returned %+v", got)
	}
	a := newRect(0, 0, 10, 10)
	b := newRect(20, 20, 10, 10)
	d.Append(a)
	d.Append(b)
	if got := d.RemoveLast(); got != b {
		t.Fatalf("RemoveLast returned %+v, want the last appended rect", got)
	}
	if prims := d.Primitives(); len(prims) != 1 || prims[0] != a {
		t.Fatalf("unexpected remaining primitives: %d", len(prims))
	}
	if d.Lookup(b.ID) != nil {
		t.Error("removed node still in index")
	}
}

func TestClearKeepsScaffolding(t *testing.T) {
	d := NewDocument(100, 100)
	d.Append(newRect(0, 0, 5, 5))
	d.Append(newRect(10, 10, 5, 5))
	d.Clear()
	if got := len(d.Primitives()); got != 0 {
		t.Fatalf("expected no primitives after clear, got %d", got)
	}
	if got := len(d.Nodes()); got != 2 {
		t.Fatalf("scaffolding lost on clear: %d nodes remain", got)
	}
}

func TestRemoveRefusesStructuralNodes(t *testing.T) {
	d := NewDocument(100, 100)
	plate := d.Nodes()[1]
	if d.Remove(plate.ID) {
		t.Fatal("Remove deleted the background plate")
	}
}

func TestClassHelpers(t *testing.T) {
	n := NewNode(KindCircle)
	n.AddClass("selected")
	n.AddClass("selected")
	if len(n.Classes) != 1 {
		t.Fatalf("duplicate class stored: %v", n.Classes)
	}
	if !n.HasClass("selected") {
		t.Error("HasClass missed an existing class")
	}
	n.RemoveClass("selected")
	if n.HasClass("selected") {
		t.Error("RemoveClass left the class behind")
	}
	n.RemoveClass("absent")
}

func TestSerializeRoundTrip(t *testing.T) {
	d := NewDocument(640, 480)
	d.Theme = "dark"

	r := newRect(10, 20, 30, 40)
	d.Append(r)

	c := NewNode(KindCircle)
	c.CX, c.CY, c.R = 100, 100, 25
	c.Fill = "#ff0000"
	c.Stroke = "#000000"
	c.StrokeWidth = 1
	d.Append(c)

	l := NewNode(KindLine)
	l.X1, l.Y1, l.X2, l.Y2 = 1, 2, 3, 4
	l.Stroke = "#00ff00"
	l.StrokeWidth = 3
	d.Append(l)

	p := NewNode(KindPath)
	p.D = "M 1 1 L 2 2"
	p.Fill = "none"
	p.Stroke = "#0000ff"
	p.StrokeWidth = 2
	p.LineCap = "round"
	p.LineJoin = "round"
	d.Append(p)

	txt := NewNode(KindText)
	txt.X, txt.Y = 5, 6
	txt.Content = "a <b> & \"c\""
	txt.FontSize = 16
	txt.Fill = "#000000"
	d.Append(txt)

	out := d.Serialize()
	got, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, out)
	}
	if got.Width != 640 || got.Height != 480 {
		t.Errorf("size %vx%v, want 640x480", got.Width, got.Height)
	}
	if got.Theme != "dark" {
		t.Errorf("theme %q, want dark", got.Theme)
	}

	prims := got.Primitives()
	if len(prims) != 5 {
		t.Fatalf("expected 5 primitives after round trip, got %d", len(prims))
	}
	// Stacking order must survive.
	wantKinds := []Kind{KindRect, KindCircle, KindLine, KindPath, KindText}
	for i, k := range wantKinds {
		if prims[i].Kind != k {
			t.Errorf("primitive %d is %v, want %v", i, prims[i].Kind, k)
		}
	}
	if prims[0].X != 10 || prims[0].Y != 20 || prims[0].Width != 30 || prims[0].Height != 40 {
		t.Errorf("rect geometry lost: %+v", prims[0])
	}
	if prims[1].CX != 100 || prims[1].R != 25 {
		t.Errorf("circle geometry lost: %+v", prims[1])
	}
	if prims[3].D != "M 1 1 L 2 2" {
		t.Errorf("path data lost: %q", prims[3].D)
	}
	if prims[4].Content != txt.Content {
		t.Errorf("text content %q, want %q", prims[4].Content, txt.Content)
	}
	if got.Lookup(r.ID) == nil {
		t.Error("identifiers not preserved through round trip")
	}
}

func TestParseRejectsNonSVG(t *testing.T) {
	if _, err := Parse(strings.NewReader("<html></html>")); err == nil {
		t.Fatal("expected an error for a non-svg document")
	}
}
