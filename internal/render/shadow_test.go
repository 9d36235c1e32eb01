package render

import (
	"image"
	"image/color"
	"testing"
)

func TestApplyShadowKeepsBounds(t *testing.T) {
	layer := image.NewRGBA(image.Rect(0, 0, 20, 20))
	layer.Set(10, 10, color.RGBA{R: 255, A: 255})

	out := ApplyShadow(layer, SelectionShadowOptions(color.RGBA{59, 130, 246, 255}))
	if out == nil {
		t.Fatal("expected output image")
	}
	if !out.Bounds().Eq(layer.Bounds()) {
		t.Fatalf("bounds changed: %v, want %v", out.Bounds(), layer.Bounds())
	}
	// The subject pixel survives compositing on top of its own shadow.
	if got := out.RGBAAt(10, 10); got.R != 255 || got.A != 255 {
		t.Fatalf("subject pixel lost: %+v", got)
	}
	// The blur spreads tinted alpha beyond the silhouette.
	if out.RGBAAt(12, 10).A == 0 {
		t.Fatal("expected halo alpha next to the subject")
	}
}

func TestApplyShadowHaloCarriesTint(t *testing.T) {
	layer := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 6; y < 10; y++ {
		for x := 6; x < 10; x++ {
			layer.Set(x, y, color.RGBA{A: 255})
		}
	}
	tint := color.RGBA{0, 0, 255, 255}
	out := ApplyShadow(layer, ShadowOptions{Radius: 2, Color: tint})
	px := out.RGBAAt(11, 8) // just outside the silhouette
	if px.A == 0 {
		t.Fatal("expected halo outside the silhouette")
	}
	if px.B == 0 || px.R > px.B {
		t.Fatalf("halo not tinted: %+v", px)
	}
}

func TestApplyShadowNoopWhenColorTransparent(t *testing.T) {
	layer := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			layer.Set(x, y, fill)
		}
	}
	out := ApplyShadow(layer, ShadowOptions{Radius: 12, Color: color.RGBA{}})
	if out != layer {
		t.Fatal("expected the layer back unchanged")
	}
}

func TestApplyShadowNilLayer(t *testing.T) {
	if out := ApplyShadow(nil, SelectionShadowOptions(color.RGBA{A: 255})); out != nil {
		t.Fatalf("expected nil for a nil layer, got %v", out.Bounds())
	}
}

func TestBlurGraySpreads(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 9, 9))
	src.SetGray(4, 4, color.Gray{Y: 255})
	out := blurGray(src, 2)
	if out.GrayAt(4, 4).Y == 0 {
		t.Fatal("center lost all intensity")
	}
	if out.GrayAt(6, 4).Y == 0 || out.GrayAt(4, 6).Y == 0 {
		t.Fatal("blur did not spread to neighbors inside the radius")
	}
	if out.GrayAt(8, 8).Y != 0 {
		t.Fatal("blur spread past the radius")
	}
}
