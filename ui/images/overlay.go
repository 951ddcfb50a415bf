package images

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/soocke/ratio-crop-go/domain/editor"
)

// OverlayStyle sets the colours used when compositing the crop overlay.
type OverlayStyle struct {
	Mask         color.Color // drawn over the area outside the crop
	Outline      color.Color
	OutlineWidth int
	Handle       color.Color
	HandleBorder color.Color
}

// DefaultOverlayStyle dims outside the crop to half brightness and draws an
// amber outline with amber handles.
func DefaultOverlayStyle() OverlayStyle {
	return OverlayStyle{
		Mask:         color.NRGBA{0, 0, 0, 128},
		Outline:      color.NRGBA{0xFF, 0xC1, 0x07, 0xFF},
		OutlineWidth: 2,
		Handle:       color.NRGBA{0xFF, 0xC1, 0x07, 0xFF},
		HandleBorder: color.NRGBA{0x1e, 0x29, 0x3b, 0xFF},
	}
}

// RenderOverlay composites ov on top of base into a pooled image of the
// frame's size. base is expected to be the display-scaled image. Pass the
// result to RecycleFrame once it has been displayed.
func RenderOverlay(base image.Image, ov editor.Overlay, st OverlayStyle) *image.RGBA {
	w, h := ov.Frame.Width, ov.Frame.Height
	if w < 1 || h < 1 {
		if base == nil {
			return image.NewRGBA(image.Rect(0, 0, 1, 1))
		}
		w, h = base.Bounds().Dx(), base.Bounds().Dy()
	}
	dst := AcquireFrame(image.Rect(0, 0, w, h))
	if base == nil || base.Bounds().Size() != dst.Rect.Size() {
		clear(dst.Pix)
	}
	if base != nil {
		xdraw.Draw(dst, dst.Bounds(), base, base.Bounds().Min, xdraw.Src)
	}
	if st.Mask != nil {
		mask := image.NewUniform(st.Mask)
		for _, m := range ov.Masks {
			xdraw.Draw(dst, m, mask, image.Point{}, xdraw.Over)
		}
	}
	if st.Outline != nil && st.OutlineWidth > 0 {
		strokeRect(dst, ov.Rect.Image(), st.OutlineWidth, st.Outline)
	}
	if st.Handle != nil {
		fill := image.NewUniform(st.Handle)
		for _, hr := range ov.Handles {
			xdraw.Draw(dst, hr, fill, image.Point{}, xdraw.Src)
			if st.HandleBorder != nil {
				strokeRect(dst, hr, 1, st.HandleBorder)
			}
		}
	}
	return dst
}

// strokeRect draws a border of the given width just inside r.
func strokeRect(dst *image.RGBA, r image.Rectangle, width int, c color.Color) {
	if r.Empty() {
		return
	}
	u := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		xdraw.Draw(dst, e.Intersect(r), u, image.Point{}, xdraw.Src)
	}
}
