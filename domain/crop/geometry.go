package crop

import (
	"fmt"
	"math"
)

// NewFrame derives the display frame for a source image so that it fits
// within maxW x maxH. Images are only ever scaled down.
func NewFrame(srcW, srcH, maxW, maxH int) (Frame, error) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return Frame{}, fmt.Errorf("%w: source %dx%d, max %dx%d", ErrInvalidFrame, srcW, srcH, maxW, maxH)
	}
	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	if scale > 1 {
		scale = 1
	}
	w := clampInt(int(math.Round(float64(srcW)*scale)), 1, maxW)
	h := clampInt(int(math.Round(float64(srcH)*scale)), 1, maxH)
	return Frame{Scale: scale, Width: w, Height: h, SourceWidth: srcW, SourceHeight: srcH}, nil
}

// InitCentered returns the largest rectangle of the given ratio that fits the
// frame, centred on the axis that has slack.
func InitCentered(f Frame, ratio Ratio) Rect {
	target := ratio.Float()
	if f.Width <= 0 || f.Height <= 0 || target <= 0 {
		return Rect{}
	}
	var r Rect
	if float64(f.Width)/float64(f.Height) > target {
		// wider than target: full height
		r.H = f.Height
		r.W = int(float64(r.H) * target)
		if r.W > f.Width {
			r.W = f.Width
		}
		r.X = (f.Width - r.W) / 2
	} else {
		r.W = f.Width
		r.H = int(float64(r.W) / target)
		if r.H > f.Height {
			r.H = f.Height
		}
		r.Y = (f.Height - r.H) / 2
	}
	return r
}

// Reset restores the default centred rectangle.
func Reset(f Frame, ratio Ratio) Rect { return InitCentered(f, ratio) }

// MoveBy translates r and clamps it back into the frame. The size never
// changes and the move is never rejected.
func MoveBy(r Rect, f Frame, dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	if r.X+r.W > f.Width {
		r.X = f.Width - r.W
	}
	if r.Y+r.H > f.Height {
		r.Y = f.Height - r.H
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

// ResizeFromCorner grows or shrinks r by dragging corner c horizontally by
// dx. The height always follows the width through the fixed ratio, rounded
// to the nearest pixel, and the edges opposite c stay put. dy is accepted
// for symmetry with pointer deltas but does not influence the result.
//
// The step is all-or-nothing: if the new rectangle would drop below the
// minimum size or leave the frame, r is returned unchanged with ok=false.
func ResizeFromCorner(r Rect, f Frame, lim Limits, c Corner, dx, dy int) (Rect, bool) {
	e, valid := c.edges()
	target := lim.Ratio.Float()
	if !valid || target <= 0 {
		return r, false
	}
	next := r
	if e.left {
		next.W = r.W - dx
		next.X = r.X + dx
	} else {
		next.W = r.W + dx
	}
	next.H = int(math.Round(float64(next.W) / target))
	if e.top {
		next.Y = r.Y - (next.H - r.H)
	}
	if next.W < lim.MinSize || next.H < lim.MinSize {
		return r, false
	}
	if !next.Inside(f) {
		return r, false
	}
	return next, true
}

// ToSourceSpace maps a display rectangle back to source pixels by dividing
// through the frame scale and truncating. The result is clamped to the
// source bounds so float error never produces an out-of-range crop.
func ToSourceSpace(r Rect, f Frame) Result {
	if f.Scale <= 0 {
		return Result{}
	}
	res := Result{
		X:      int(float64(r.X) / f.Scale),
		Y:      int(float64(r.Y) / f.Scale),
		Width:  int(float64(r.W) / f.Scale),
		Height: int(float64(r.H) / f.Scale),
	}
	if f.SourceWidth > 0 && res.X+res.Width > f.SourceWidth {
		res.Width = f.SourceWidth - res.X
	}
	if f.SourceHeight > 0 && res.Y+res.Height > f.SourceHeight {
		res.Height = f.SourceHeight - res.Y
	}
	return res
}

// CenterCrop returns the full-size centred crop of ratio for a source image.
// Sizes are rounded, offsets truncated.
func CenterCrop(srcW, srcH int, ratio Ratio) Result {
	target := ratio.Float()
	if srcW <= 0 || srcH <= 0 || target <= 0 {
		return Result{}
	}
	var w, h int
	if float64(srcW)/float64(srcH) > target {
		h = srcH
		w = int(math.Round(float64(h) * target))
	} else {
		w = srcW
		h = int(math.Round(float64(w) / target))
	}
	w = clampInt(w, 1, srcW)
	h = clampInt(h, 1, srcH)
	return Result{X: (srcW - w) / 2, Y: (srcH - h) / 2, Width: w, Height: h}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
