package editor

import (
	"image"
	"log/slog"

	"github.com/soocke/ratio-crop-go/domain/crop"
)

// Session is one editing session over a single image. It owns the crop
// rectangle and the gesture state and must only be driven from one
// goroutine (the UI event loop).
type Session struct {
	imagePath string
	frame     crop.Frame
	opts      Options
	rect      crop.Rect
	gesture   Gesture
	active    bool
	redraw    Redrawer
	cropFn    CropFunc
	logger    *slog.Logger
}

// BeginSession starts editing imagePath, places the default centred
// rectangle and requests the first redraw.
func BeginSession(imagePath string, f crop.Frame, opts Options, redraw Redrawer, cropFn CropFunc, logger *slog.Logger) (*Session, crop.Rect) {
	if opts.HandleSize <= 0 {
		opts.HandleSize = DefaultOptions().HandleSize
	}
	if !opts.Limits.Ratio.Valid() {
		opts.Limits.Ratio = crop.DefaultRatio
	}
	s := &Session{
		imagePath: imagePath,
		frame:     f,
		opts:      opts,
		rect:      crop.InitCentered(f, opts.Limits.Ratio),
		active:    true,
		redraw:    redraw,
		cropFn:    cropFn,
		logger:    logger,
	}
	if logger != nil {
		logger.Info("editor session started", "path", imagePath, "display_w", f.Width, "display_h", f.Height, "scale", f.Scale)
	}
	s.requestRedraw()
	return s, s.rect
}

func (s *Session) Rect() crop.Rect     { return s.rect }
func (s *Session) Gesture() Gesture    { return s.gesture }
func (s *Session) Active() bool        { return s != nil && s.active }
func (s *Session) Frame() crop.Frame   { return s.frame }
func (s *Session) ImagePath() string   { return s.imagePath }
func (s *Session) Overlay() Overlay    { return BuildOverlay(s.frame, s.rect, s.opts.HandleSize) }
func (s *Session) Result() crop.Result { return crop.ToSourceSpace(s.rect, s.frame) }

// OnPointerDown starts a resize when p hits a handle, a drag when it hits
// the body, and is ignored otherwise.
func (s *Session) OnPointerDown(p image.Point) {
	if !s.Active() {
		return
	}
	if c, ok := crop.HitHandle(s.rect, s.opts.HandleSize, p); ok {
		s.transition(Gesture{State: Resizing, Corner: c, Anchor: p})
		return
	}
	if s.rect.Contains(p) {
		s.transition(Gesture{State: Dragging, Anchor: p})
	}
}

// OnPointerMove applies the delta since the previous event. The anchor
// always advances, so a rejected resize step is dropped rather than
// accumulated.
func (s *Session) OnPointerMove(p image.Point) {
	if !s.Active() {
		return
	}
	dx, dy := p.X-s.gesture.Anchor.X, p.Y-s.gesture.Anchor.Y
	switch s.gesture.State {
	case Dragging:
		s.gesture.Anchor = p
		next := crop.MoveBy(s.rect, s.frame, dx, dy)
		if next != s.rect {
			s.rect = next
			s.requestRedraw()
		}
	case Resizing:
		s.gesture.Anchor = p
		next, ok := crop.ResizeFromCorner(s.rect, s.frame, s.opts.Limits, s.gesture.Corner, dx, dy)
		if ok && next != s.rect {
			s.rect = next
			s.requestRedraw()
		}
	}
}

// OnPointerUp ends any gesture.
func (s *Session) OnPointerUp() {
	if s == nil {
		return
	}
	s.transition(Gesture{State: Idle})
}

// OnConfirm maps the rectangle to source pixels, ends the session and hands
// the result to the crop function exactly once.
func (s *Session) OnConfirm() error {
	if !s.Active() {
		return ErrNoSession
	}
	if s.gesture.State != Idle {
		return ErrGestureActive
	}
	res := crop.ToSourceSpace(s.rect, s.frame)
	s.end()
	if s.logger != nil {
		s.logger.Info("crop confirmed", "path", s.imagePath, "x", res.X, "y", res.Y, "width", res.Width, "height", res.Height)
	}
	if s.cropFn == nil {
		return nil
	}
	return s.cropFn(s.imagePath, res)
}

// OnCancel ends the session without cropping.
func (s *Session) OnCancel() error {
	if !s.Active() {
		return ErrNoSession
	}
	s.end()
	if s.logger != nil {
		s.logger.Info("editor session cancelled", "path", s.imagePath)
	}
	return nil
}

// OnResetRequested restores the centred rectangle, abandoning any gesture.
func (s *Session) OnResetRequested() {
	if !s.Active() {
		return
	}
	s.transition(Gesture{State: Idle})
	s.rect = crop.Reset(s.frame, s.opts.Limits.Ratio)
	s.requestRedraw()
}

func (s *Session) end() {
	s.gesture = Gesture{State: Idle}
	s.active = false
}

func (s *Session) transition(next Gesture) {
	prev := s.gesture
	s.gesture = next
	if prev.State == next.State || s.logger == nil {
		return
	}
	if next.State == Resizing {
		s.logger.Debug("gesture transition", "from", prev.State.String(), "to", next.State.String(), "corner", next.Corner.String())
		return
	}
	s.logger.Debug("gesture transition", "from", prev.State.String(), "to", next.State.String())
}

func (s *Session) requestRedraw() {
	if s.redraw != nil {
		s.redraw.Redraw(s.Overlay())
	}
}
