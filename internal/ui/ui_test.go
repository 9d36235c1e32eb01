package ui

import (
	"image"
	"testing"

	"github.com/example/vectorpad/internal/editor"
	"github.com/example/vectorpad/internal/theme"
)

func TestPaletteLookups(t *testing.T) {
	if got := strokeIndexOf("#000000"); got != 0 {
		t.Errorf("strokeIndexOf black = %d", got)
	}
	if got := fillIndexOf("none"); got != 0 {
		t.Errorf("fillIndexOf none = %d", got)
	}
	if got := widthIndexOf(2); got != 1 {
		t.Errorf("widthIndexOf 2 = %d", got)
	}
	if got := strokeIndexOf("#bada55"); got != -1 {
		t.Errorf("unknown paint matched slot %d", got)
	}
}

func TestBuildToolbarLayout(t *testing.T) {
	var selected editor.Tool = -1
	buildToolbar(theme.Default(), func(tool editor.Tool) { selected = tool })

	if len(toolButtons) != len(toolEntries) {
		t.Fatalf("expected %d tool buttons, got %d", len(toolEntries), len(toolButtons))
	}
	toolButtons[4].Activate()
	if selected != editor.ToolPencil {
		t.Errorf("activating the pencil button selected %v", selected)
	}

	all := make([]image.Rectangle, 0, len(toolButtons)+len(strokeRects)+len(fillRects)+len(widthRects))
	for _, cb := range toolButtons {
		all = append(all, cb.Rect())
	}
	all = append(all, strokeRects...)
	all = append(all, fillRects...)
	all = append(all, widthRects...)
	for i, a := range all {
		if a.Empty() {
			t.Fatalf("rect %d is empty", i)
		}
		if a.Min.X < 0 || a.Max.X > toolbarWidth {
			t.Errorf("rect %d leaves the toolbar: %v", i, a)
		}
		for j := i + 1; j < len(all); j++ {
			if a.Overlaps(all[j]) {
				t.Errorf("rects %d and %d overlap: %v / %v", i, j, a, all[j])
			}
		}
	}
}

func TestEnsurePaletteEntries(t *testing.T) {
	if idx := EnsureStrokeColor("#000000"); idx != 0 {
		t.Errorf("existing paint moved to slot %d", idx)
	}
	idx := EnsureStrokeColor("#123456")
	if idx < 0 {
		t.Fatalf("new paint not appended")
	}
	if got := strokePalette[idx].Color; got.R != 0x12 || got.G != 0x34 || got.B != 0x56 {
		t.Errorf("swatch color = %v", got)
	}
	if again := EnsureStrokeColor("#123456"); again != idx {
		t.Errorf("duplicate appended: %d vs %d", again, idx)
	}
	if idx := EnsureStrokeColor("url(#canvas-grid)"); idx != -1 {
		t.Errorf("pattern paint got a swatch slot %d", idx)
	}

	widx := EnsureWidth(4)
	if widx < 0 || widthOptions[widx] != 4 {
		t.Fatalf("width not appended: %v", widthOptions)
	}
	for i := 1; i < len(widthOptions); i++ {
		if widthOptions[i-1] >= widthOptions[i] {
			t.Errorf("widths not sorted: %v", widthOptions)
		}
	}
}

type countingButton struct {
	rect  image.Rectangle
	draws int
}

func (b *countingButton) Draw(dst *image.RGBA, state ButtonState) { b.draws++ }
func (b *countingButton) Rect() image.Rectangle                   { return b.rect }
func (b *countingButton) SetRect(r image.Rectangle)               { b.rect = r }
func (b *countingButton) Activate()                               {}

func TestCacheButtonCachesPerState(t *testing.T) {
	inner := &countingButton{rect: image.Rect(0, 0, 10, 10)}
	cb := &CacheButton{Button: inner}
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))

	cb.Draw(dst, StateDefault)
	cb.Draw(dst, StateDefault)
	cb.Draw(dst, StateHover)
	if inner.draws != 2 {
		t.Errorf("expected 2 underlying draws, got %d", inner.draws)
	}

	cb.SetRect(image.Rect(0, 10, 10, 20))
	cb.Draw(dst, StateDefault)
	if inner.draws != 3 {
		t.Errorf("cache not invalidated on SetRect: %d draws", inner.draws)
	}
}
