package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/example/vectorpad/internal/editor"
	"github.com/example/vectorpad/internal/svg"
	"github.com/example/vectorpad/internal/theme"
)

func TestRenderPlateAndGrid(t *testing.T) {
	doc := svg.NewDocument(100, 80)
	r := New(nil)
	img := r.Render(doc)
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 80 {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
	th := theme.Default()
	// A point off the grid lines carries the plate color.
	if got := img.RGBAAt(10, 10); got != th.CanvasLight {
		t.Errorf("plate pixel = %v, want %v", got, th.CanvasLight)
	}
	// Grid lines sit on multiples of the pattern cell.
	if got := img.RGBAAt(20, 10); got != th.GridLineLight {
		t.Errorf("grid pixel = %v, want %v", got, th.GridLineLight)
	}
}

func TestRenderDarkTheme(t *testing.T) {
	doc := svg.NewDocument(40, 40)
	doc.Theme = "dark"
	img := New(nil).Render(doc)
	if got := img.RGBAAt(10, 10); got != theme.Default().CanvasDark {
		t.Errorf("dark plate pixel = %v", got)
	}
}

func TestRenderShapes(t *testing.T) {
	doc := svg.NewDocument(100, 100)

	rect := svg.NewNode(svg.KindRect)
	rect.X, rect.Y, rect.Width, rect.Height = 30, 30, 20, 20
	rect.Fill = "#ff0000"
	rect.Stroke = "none"
	doc.Append(rect)

	line := svg.NewNode(svg.KindLine)
	line.X1, line.Y1, line.X2, line.Y2 = 10, 70, 30, 70
	line.Stroke = "#00ff00"
	line.StrokeWidth = 1
	doc.Append(line)

	img := New(nil).Render(doc)
	if got := img.RGBAAt(40, 40); got.R != 255 || got.G != 0 {
		t.Errorf("rect interior = %v, want red", got)
	}
	if got := img.RGBAAt(20, 70); got.G != 255 {
		t.Errorf("line pixel = %v, want green", got)
	}
}

func TestRenderPathFollowsStroke(t *testing.T) {
	doc := svg.NewDocument(50, 50)
	p := svg.NewNode(svg.KindPath)
	p.D = "M 5 25 L 45 25"
	p.Fill = "none"
	p.Stroke = "#0000ff"
	p.StrokeWidth = 1
	doc.Append(p)

	img := New(nil).Render(doc)
	if got := img.RGBAAt(25, 25); got.B != 255 {
		t.Errorf("path pixel = %v, want blue", got)
	}
}

func TestRenderSelectionGlow(t *testing.T) {
	doc := svg.NewDocument(60, 60)
	rect := svg.NewNode(svg.KindRect)
	rect.X, rect.Y, rect.Width, rect.Height = 25, 25, 10, 10
	rect.Fill = "#000000"
	rect.Stroke = "none"
	rect.AddClass(editor.SelectedClass)
	doc.Append(rect)

	th := theme.Default()
	img := New(th).Render(doc)
	// Just outside the rect the plate should be tinted toward the glow color
	// instead of plain white.
	px := img.RGBAAt(37, 30)
	if px == th.CanvasLight {
		t.Fatalf("no glow next to a selected shape: %v", px)
	}
	if px.B <= px.R {
		t.Errorf("glow is not blue-tinted: %v", px)
	}
}

func TestParsePaint(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"#112233", true},
		{"#11223344", true},
		{"red", true},
		{"Red", true},
		{"none", false},
		{"", false},
		{"url(#canvas-grid)", false},
		{"#12", false},
		{"#zzzzzz", false},
	}
	for _, tc := range cases {
		if _, ok := parsePaint(tc.in); ok != tc.ok {
			t.Errorf("parsePaint(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
	col, _ := parsePaint("#112233")
	if col.R != 0x11 || col.G != 0x22 || col.B != 0x33 || col.A != 255 {
		t.Errorf("hex decode wrong: %+v", col)
	}
}

func TestEncodePNG(t *testing.T) {
	doc := svg.NewDocument(32, 32)
	var buf bytes.Buffer
	if err := New(nil).EncodePNG(&buf, doc); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("decoded size %v", img.Bounds())
	}
}

func TestMeasureText(t *testing.T) {
	w, h, baseline, err := MeasureText("hello", 16)
	if err != nil {
		t.Fatalf("MeasureText failed: %v", err)
	}
	if w <= 0 || h <= 0 || baseline <= 0 || baseline > h {
		t.Errorf("implausible metrics w=%d h=%d baseline=%d", w, h, baseline)
	}
	wider, _, _, err := MeasureText("hello world", 16)
	if err != nil {
		t.Fatalf("MeasureText failed: %v", err)
	}
	if wider <= w {
		t.Errorf("longer text measured narrower: %d <= %d", wider, w)
	}
}
