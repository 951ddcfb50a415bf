package crop

import "image"

// Handles returns the handle squares for r in NW, NE, SW, SE order. Each
// square has the given side and is centred on its corner.
func Handles(r Rect, size int) [4]image.Rectangle {
	off := size / 2
	pts := [4]image.Point{
		NW: {r.X, r.Y},
		NE: {r.Right(), r.Y},
		SW: {r.X, r.Bottom()},
		SE: {r.Right(), r.Bottom()},
	}
	var out [4]image.Rectangle
	for i, p := range pts {
		min := p.Sub(image.Pt(off, off))
		out[i] = image.Rectangle{Min: min, Max: min.Add(image.Pt(size, size))}
	}
	return out
}

// HitHandle returns the first handle whose square contains p. Square edges
// count as hits.
func HitHandle(r Rect, size int, p image.Point) (Corner, bool) {
	hs := Handles(r, size)
	for _, c := range Corners {
		h := hs[c]
		if p.X >= h.Min.X && p.X <= h.Max.X && p.Y >= h.Min.Y && p.Y <= h.Max.Y {
			return c, true
		}
	}
	return 0, false
}

// Masks returns the dimmed regions outside r: top strip, bottom strip, then
// left and right strips limited to r's vertical extent. A strip is omitted
// when the matching edge of r lies on the frame edge.
func Masks(r Rect, f Frame) []image.Rectangle {
	out := make([]image.Rectangle, 0, 4)
	if r.Y > 0 {
		out = append(out, image.Rect(0, 0, f.Width, r.Y))
	}
	if r.Bottom() < f.Height {
		out = append(out, image.Rect(0, r.Bottom(), f.Width, f.Height))
	}
	if r.X > 0 {
		out = append(out, image.Rect(0, r.Y, r.X, r.Bottom()))
	}
	if r.Right() < f.Width {
		out = append(out, image.Rect(r.Right(), r.Y, f.Width, r.Bottom()))
	}
	return out
}
