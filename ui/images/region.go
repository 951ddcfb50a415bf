package images

import (
	"errors"
	"image"
	"image/draw"
)

// ExtractRegion copies r out of src, clamped to the source bounds. The
// result always starts at (0,0) and is at least 1x1.
func ExtractRegion(src image.Image, r image.Rectangle) (*image.RGBA, image.Rectangle, error) {
	if src == nil {
		return nil, image.Rectangle{}, errors.New("nil image")
	}
	b := src.Bounds()
	roi := r.Add(b.Min).Intersect(b)
	if roi.Empty() {
		x, y := b.Min.X, b.Min.Y
		if r.Min.X > 0 && b.Dx() > 0 {
			x = min(b.Min.X+r.Min.X, b.Max.X-1)
		}
		if r.Min.Y > 0 && b.Dy() > 0 {
			y = min(b.Min.Y+r.Min.Y, b.Max.Y-1)
		}
		roi = image.Rect(x, y, x+1, y+1)
	}
	out := image.NewRGBA(image.Rect(0, 0, roi.Dx(), roi.Dy()))
	draw.Draw(out, out.Bounds(), src, roi.Min, draw.Src)
	return out, roi.Sub(b.Min), nil
}
