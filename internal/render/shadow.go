package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the soft shadow composited behind a shape layer.
// The selection highlight uses a tinted, zero-offset shadow so shapes appear
// to glow.
type ShadowOptions struct {
	Radius int
	Offset image.Point
	Color  color.RGBA
}

// SelectionShadowOptions returns the shadow used to highlight selected
// shapes: a blue halo, blurred but not displaced.
func SelectionShadowOptions(tint color.RGBA) ShadowOptions {
	return ShadowOptions{
		Radius: 4,
		Offset: image.Point{},
		Color:  tint,
	}
}

// ApplyShadow composites layer onto a new image of the same bounds with a
// blurred shadow of its silhouette underneath. The shadow is clipped to the
// layer bounds; callers render shapes into a canvas-sized layer so nothing
// is lost. A nil or empty layer is returned unchanged.
func ApplyShadow(layer *image.RGBA, opts ShadowOptions) *image.RGBA {
	if layer == nil || layer.Bounds().Empty() {
		return layer
	}
	if opts.Color.A == 0 {
		return layer
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	bounds := layer.Bounds()
	mask := image.NewGray(bounds.Sub(bounds.Min))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := layer.RGBAAt(x, y).A
			if a == 0 {
				continue
			}
			mask.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{Y: a})
		}
	}
	blurred := blurGray(mask, radius)

	dst := image.NewRGBA(bounds)
	draw.DrawMask(dst, bounds.Add(opts.Offset), image.NewUniform(opts.Color), image.Point{}, blurred, blurred.Bounds().Min, draw.Over)
	draw.Draw(dst, bounds, layer, bounds.Min, draw.Over)
	return dst
}

func blurGray(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		out := image.NewGray(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tmp := image.NewGray(bounds)
	dst := image.NewGray(bounds)

	for y := 0; y < h; y++ {
		rowStart := y * src.Stride
		tmpStart := y * tmp.Stride
		prefix := make([]int, w+1)
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(src.Pix[rowStart+x])
		}
		for x := 0; x < w; x++ {
			x0 := x - radius
			if x0 < 0 {
				x0 = 0
			}
			x1 := x + radius
			if x1 >= w {
				x1 = w - 1
			}
			sum := prefix[x1+1] - prefix[x0]
			count := x1 - x0 + 1
			tmp.Pix[tmpStart+x] = uint8(sum / count)
		}
	}

	for x := 0; x < w; x++ {
		prefix := make([]int, h+1)
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0 := y - radius
			if y0 < 0 {
				y0 = 0
			}
			y1 := y + radius
			if y1 >= h {
				y1 = h - 1
			}
			sum := prefix[y1+1] - prefix[y0]
			count := y1 - y0 + 1
			dst.Pix[y*dst.Stride+x] = uint8(sum / count)
		}
	}

	return dst
}
