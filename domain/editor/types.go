package editor

import (
	"errors"
	"image"

	"github.com/soocke/ratio-crop-go/domain/crop"
)

// Session precondition failures. They indicate a host bug, not a user error.
var (
	ErrNoSession     = errors.New("editor: no active session")
	ErrGestureActive = errors.New("editor: gesture in progress")
)

// GestureState enumerates the pointer gesture states.
type GestureState int

const (
	Idle GestureState = iota
	Dragging
	Resizing
)

func (s GestureState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Gesture is the transient pointer state. Corner is meaningful only while
// Resizing.
type Gesture struct {
	State  GestureState
	Corner crop.Corner
	Anchor image.Point
}

// Overlay is everything a host needs to paint one frame of the editor.
type Overlay struct {
	Frame   crop.Frame
	Rect    crop.Rect
	Handles [4]image.Rectangle
	Masks   []image.Rectangle
}

// BuildOverlay derives the handle squares and mask strips for r.
func BuildOverlay(f crop.Frame, r crop.Rect, handleSize int) Overlay {
	return Overlay{Frame: f, Rect: r, Handles: crop.Handles(r, handleSize), Masks: crop.Masks(r, f)}
}

// Redrawer is implemented by the host and invoked after every accepted
// mutation.
type Redrawer interface {
	Redraw(Overlay)
}

// RedrawFunc adapts a function to Redrawer.
type RedrawFunc func(Overlay)

func (fn RedrawFunc) Redraw(o Overlay) { fn(o) }

// CropFunc executes the crop on confirm. Its error is returned to the host
// unchanged.
type CropFunc func(imagePath string, r crop.Result) error

// Options configures a session.
type Options struct {
	Limits     crop.Limits
	HandleSize int
}

// DefaultOptions returns the stock limits with 12px handles.
func DefaultOptions() Options { return Options{Limits: crop.DefaultLimits(), HandleSize: 12} }
