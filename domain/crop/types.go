package crop

import (
	"errors"
	"image"
)

// ErrInvalidFrame is returned when a frame cannot be derived from the given
// source or display dimensions.
var ErrInvalidFrame = errors.New("crop: invalid frame dimensions")

// Ratio is a fixed width:height aspect ratio.
type Ratio struct {
	W int
	H int
}

// DefaultRatio is the iPhone 17 Pro screen ratio (1206:2622).
var DefaultRatio = Ratio{W: 1206, H: 2622}

// Float returns W/H. A degenerate ratio returns 0.
func (r Ratio) Float() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return float64(r.W) / float64(r.H)
}

// Valid reports whether both terms are positive.
func (r Ratio) Valid() bool { return r.W > 0 && r.H > 0 }

// Frame describes the displayed image for one editing session. It is
// immutable once built.
type Frame struct {
	Scale        float64 // source -> display factor, 0 < Scale <= 1
	Width        int     // display width in pixels
	Height       int     // display height in pixels
	SourceWidth  int
	SourceHeight int
}

// Rect is the crop rectangle in display space.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p image.Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle { return image.Rect(r.X, r.Y, r.Right(), r.Bottom()) }

// Inside reports whether r lies fully within the frame.
func (r Rect) Inside(f Frame) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= f.Width && r.Bottom() <= f.Height
}

// Limits are the per-session constraints applied to resizes.
type Limits struct {
	Ratio   Ratio
	MinSize int
}

// DefaultLimits returns the default ratio with a 50px minimum.
func DefaultLimits() Limits { return Limits{Ratio: DefaultRatio, MinSize: 50} }

// Result is a crop rectangle in source image pixels.
type Result struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Image converts the result to an image.Rectangle.
func (r Result) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether the result covers no pixels.
func (r Result) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Corner identifies one of the four resize handles.
type Corner int

const (
	NW Corner = iota
	NE
	SW
	SE
)

// Corners lists the handles in hit-test order.
var Corners = [4]Corner{NW, NE, SW, SE}

func (c Corner) String() string {
	switch c {
	case NW:
		return "nw"
	case NE:
		return "ne"
	case SW:
		return "sw"
	case SE:
		return "se"
	default:
		return "unknown"
	}
}

// cornerEdges records which edges a dragged corner moves. The opposite
// edges stay fixed.
type cornerEdges struct {
	left bool
	top  bool
}

var edgesByCorner = [4]cornerEdges{
	NW: {left: true, top: true},
	NE: {left: false, top: true},
	SW: {left: true, top: false},
	SE: {left: false, top: false},
}

func (c Corner) edges() (cornerEdges, bool) {
	if c < NW || c > SE {
		return cornerEdges{}, false
	}
	return edgesByCorner[c], true
}
