package images

import (
	"image"
	"sync"
)

// Reusable frame pool for the editor overlay. Every pointer move renders a
// full display-sized RGBA frame; pooling keeps those backing slices from
// piling up between GC cycles.

var framePool sync.Pool // stores *image.RGBA

// AcquireFrame returns a reusable RGBA image sized to rect. Pixel contents
// are unspecified. Pix length is exactly rect area * 4 and Stride is width*4.
func AcquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		img = &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	} else {
		img.Stride = w * 4
		img.Rect = rect
		img.Pix = img.Pix[:needed]
	}
	return img
}

// RecycleFrame returns the frame to the pool. The caller must not touch it
// afterwards.
func RecycleFrame(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
